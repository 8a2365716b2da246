package main

import (
	"context"
	"log"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/JpabloRR1/API-BUSQUEDA-EMPLEO/config"
	"github.com/JpabloRR1/API-BUSQUEDA-EMPLEO/internal/application"
	"github.com/JpabloRR1/API-BUSQUEDA-EMPLEO/internal/container"
	"github.com/JpabloRR1/API-BUSQUEDA-EMPLEO/internal/domain/entity"
	pginfra "github.com/JpabloRR1/API-BUSQUEDA-EMPLEO/internal/infrastructure/postgres"
	"github.com/JpabloRR1/API-BUSQUEDA-EMPLEO/pkg/helpers"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()
	logger := helpers.NewLogger(cfg.AppName+"-seed", cfg.Env)
	ctx := context.Background()

	pool, err := pginfra.NewPool(ctx, cfg.PostgresDSN(), cfg.DBMaxConns, cfg.DBMinConns, cfg.DBMaxConnLife)
	if err != nil {
		log.Fatalf("failed to connect to postgres: %v", err)
	}
	defer pool.Close()

	c := container.New(cfg, logger, container.PostgresRepositories(pool), container.Options{})
	n, err := seed(ctx, c, cfg.SeedPassword)
	if err != nil {
		log.Fatalf("seed failed: %v", err)
	}
	if n == 0 {
		logger.Info("users already present, nothing seeded")
		return
	}
	helpers.LogInfo(logger, "seeded demo data", logrus.Fields{"users": n})
}

type demoOffer struct {
	title, description string
	category           entity.OfferCategory
	skills             string
}

type demoOrganization struct {
	name, email string
	offers      []demoOffer
}

var demoCandidates = []application.RegisterInput{
	{Email: "ana.garcia@unrc.edu.mx", Name: "Ana García", Program: "Data Science", Term: 8, Skills: "Python, SQL, Machine Learning"},
	{Email: "luis.martinez@unrc.edu.mx", Name: "Luis Martínez", Program: "Systems Engineering", Term: 6, Skills: "Java, JavaScript, React"},
	{Email: "sofia.hernandez@unrc.edu.mx", Name: "Sofía Hernández", Program: "Business Administration", Term: 7, Skills: "Excel, Power BI, Marketing"},
}

var demoOrganizations = []demoOrganization{
	{
		name:  "Tecnologías Avanzadas",
		email: "rh@tecavanzadas.mx",
		offers: []demoOffer{
			{"Junior Python Developer", "Backend development with Django for internal tools.", entity.CategoryJob, "Python, Django, SQL"},
			{"Machine Learning Internship", "Support the data team building predictive models.", entity.CategoryPractice, "Python, Scikit-learn, Pandas"},
		},
	},
	{
		name:  "Data Insights",
		email: "talento@datainsights.mx",
		offers: []demoOffer{
			{"Data Analyst", "Build dashboards and reports for clients.", entity.CategoryJob, "SQL, Power BI, Excel"},
		},
	},
}

// seed creates the demo population through the services. It does nothing
// when any user already exists and returns how many users it created.
func seed(ctx context.Context, c *container.Container, password string) (int, error) {
	existing, err := c.Directory.ListUsers(ctx)
	if err != nil {
		return 0, err
	}
	if len(existing) > 0 {
		return 0, nil
	}

	created := 0
	for _, in := range demoCandidates {
		in.Password = password
		in.Role = entity.RoleCandidate
		if _, err := c.Credentials.Register(ctx, in); err != nil {
			return created, err
		}
		created++
	}
	for _, org := range demoOrganizations {
		u, err := c.Credentials.Register(ctx, application.RegisterInput{
			Email:    org.email,
			Password: password,
			Name:     org.name,
			Role:     entity.RoleOrganization,
		})
		if err != nil {
			return created, err
		}
		created++
		for _, o := range org.offers {
			if _, err := c.Directory.CreateOffer(ctx, u.ID, application.OfferInput{
				Title:          o.title,
				Description:    o.description,
				Category:       o.category,
				RequiredSkills: o.skills,
				Location:       "CDMX",
			}); err != nil {
				return created, err
			}
		}
	}
	return created, nil
}
