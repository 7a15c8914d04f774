package main

import (
	"context"
	"database/sql"
	"errors"
	"flag"
	"log/slog"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/chu-physmed/rotation-planner/backend/internal/config"
	"github.com/chu-physmed/rotation-planner/backend/internal/domain"
	"github.com/chu-physmed/rotation-planner/backend/internal/planner"
	"github.com/chu-physmed/rotation-planner/backend/internal/repository"
	"github.com/chu-physmed/rotation-planner/backend/internal/seed"
	"github.com/chu-physmed/rotation-planner/backend/internal/utils"

	_ "github.com/jackc/pgx/v5/stdlib"
)

func main() {
	var op int
	var n int
	var year int

	flag.IntVar(&op, "op", 0, "opération à exécuter (1: insérer des personnes aléatoires, 2: insérer le roster réel, 3: générer le planning d'une année)")
	flag.IntVar(&n, "n", 5, "nombre de personnes à insérer")
	flag.IntVar(&year, "year", 2025, "année du planning à générer")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	if err := godotenv.Load(); err != nil {
		logger.Info("aucun fichier .env trouvé")
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("impossible de charger la configuration", slog.String("error", err.Error()))
		os.Exit(1)
	}

	dbpool, err := sql.Open("pgx", cfg.Database.DSN)
	if err != nil {
		logger.Error("impossible de créer le pool de connexions", "error", err)
		return
	}
	defer dbpool.Close()

	dbpool.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	dbpool.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	dbpool.SetConnMaxIdleTime(time.Duration(cfg.Database.MaxIdleTime) * time.Second)

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Database.ConnectTimeout)*time.Second)
	defer cancel()

	// sql.Open only builds the pool object, it does not dial the database,
	// hence the explicit ping
	if err := dbpool.PingContext(ctx); err != nil {
		logger.Error("impossible de se connecter à la base de données", "error", err)
		return
	}

	repo := repository.NewRepository(cfg, dbpool)

	switch op {
	case 0:
		slog.Error("aucune opération indiquée")
	case 1:
		if n <= 0 {
			slog.Error("nombre de personnes invalide")
		} else {
			cnt := n
			for i := 0; i < n; i++ {
				person := utils.GenerateRandomPerson(cfg.Seed.EmailDomain)
				if err := repo.CreatePerson(person); err != nil {
					slog.Error("impossible d'insérer la personne", slog.String("error", err.Error()))
					continue
				}

				cnt--
			}

			slog.Info("personnes insérées", slog.Int("count", n-cnt))
		}
	case 2:
		seed.SeedDepartmentRoster(repo)
	case 3:
		rng := domain.ScheduleRange{
			Start: time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC),
			End:   time.Date(year, time.December, 31, 0, 0, 0, 0, time.UTC),
		}

		roster, err := repo.GetEligiblePersons(rng.Start)
		if err != nil {
			slog.Error("impossible de charger le roster éligible", slog.String("error", err.Error()))
			return
		}

		schedule, err := planner.New(roster).Generate(rng)
		if err != nil {
			switch {
			case errors.Is(err, planner.ErrEmptyRoster):
				slog.Error("roster vide, insérez des personnes d'abord (op 1 ou 2)")
			default:
				slog.Error("échec de la génération", slog.String("error", err.Error()))
			}
			return
		}

		if err := repo.ReplaceScheduleRange(rng, schedule.Tasks, schedule.Guards); err != nil {
			slog.Error("impossible d'enregistrer le planning", slog.String("error", err.Error()))
			return
		}

		slog.Info("planning généré",
			slog.Int("year", year),
			slog.Int("assignments", schedule.Summary.AssignmentCount),
			slog.Int("guards", schedule.Summary.GuardCount),
		)
	default:
		slog.Error("opération inconnue")
	}
}
