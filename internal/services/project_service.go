package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/baharkarakas/portfolio-api/internal/api/validate"
	"github.com/baharkarakas/portfolio-api/internal/metrics"
	"github.com/baharkarakas/portfolio-api/internal/models"
	repo "github.com/baharkarakas/portfolio-api/internal/repository"
)

type ProjectService struct {
	r   repo.Projects
	log *slog.Logger
}

func NewProjectService(r repo.Projects, log *slog.Logger) *ProjectService {
	return &ProjectService{r: r, log: log}
}

func (s *ProjectService) List(ctx context.Context) ([]models.Project, error) {
	return s.r.List(ctx)
}

func (s *ProjectService) Get(ctx context.Context, id int64) (models.Project, error) {
	return s.r.Get(ctx, id)
}

// Create validates the payload and stores it. Validation failures are
// returned as validate.Errs and nothing is written.
func (s *ProjectService) Create(ctx context.Context, in validate.ProjectInput) (models.Project, error) {
	in.Normalize()
	if err := validate.Check(in); err != nil {
		return models.Project{}, err
	}
	p, err := s.r.Create(ctx, in.ToModel())
	if err != nil {
		return models.Project{}, err
	}
	metrics.ProjectsCreated.Inc()
	return p, nil
}

// SeedDefaults stores DefaultProjects when no project exists yet and reports
// how many were added.
func (s *ProjectService) SeedDefaults(ctx context.Context) (int, error) {
	n, err := s.r.Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("count projects: %w", err)
	}
	if n > 0 {
		return 0, nil
	}
	for i, p := range DefaultProjects() {
		if _, err := s.r.Create(ctx, p); err != nil {
			return i, fmt.Errorf("seed project %q: %w", p.Title, err)
		}
		metrics.ProjectsCreated.Inc()
	}
	s.log.Info("seeded default projects", "count", len(DefaultProjects()))
	return len(DefaultProjects()), nil
}

// DefaultProjects is the fallback portfolio shown on a fresh install.
func DefaultProjects() []models.NewProject {
	return []models.NewProject{
		{
			Title:       "Telecommunication Churn Prediction",
			Description: "Developed a machine learning model to predict customer churn in the telecommunications industry, helping identify at-risk customers and reducing potential revenue loss.",
			Insights: []string{
				"Identified contract type as a primary churn predictor with month-to-month contracts showing 43% higher churn rate",
				"Analyzed service usage patterns to determine customer segments most likely to churn",
				"Achieved 89% accuracy in predicting customer churn with XGBoost algorithm",
			},
			Technologies: []string{"Python", "SQL", "Scikit-Learn", "Pandas", "Matplotlib", "Seaborn"},
			GithubURL:    "https://github.com/Bhavyasri0088/Telecommunication-chrun",
		},
		{
			Title:       "Fake News Detection with NLP",
			Description: "Built a machine learning model that identifies fake news articles using natural language processing techniques and advanced text classification algorithms.",
			Insights: []string{
				"Implemented TF-IDF vectorization to extract meaningful features from text",
				"Identified linguistic patterns that distinguish fake news from credible sources",
				"Achieved 93% classification accuracy using ensemble learning techniques",
			},
			Technologies: []string{"Python", "NLTK", "Scikit-Learn", "Pandas", "Matplotlib", "Seaborn"},
			GithubURL:    "https://github.com/Bhavyasri0088/Fake-and-real-news",
		},
	}
}
