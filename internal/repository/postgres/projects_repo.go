package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/baharkarakas/portfolio-api/internal/models"
)

type projectsRepo struct{ db DBTX }

const projectColumns = `id, title, description, insights, technologies, github_url, report_url, created_at`

func scanProject(row pgx.Row) (models.Project, error) {
	var p models.Project
	err := row.Scan(&p.ID, &p.Title, &p.Description, &p.Insights, &p.Technologies, &p.GithubURL, &p.ReportURL, &p.CreatedAt)
	return p, err
}

func (r *projectsRepo) List(ctx context.Context) ([]models.Project, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+projectColumns+` FROM projects ORDER BY created_at, id`)
	if err != nil {
		return nil, wrap("list projects", err)
	}
	defer rows.Close()

	out := []models.Project{}
	for rows.Next() {
		p, err := scanProject(rows)
		if err != nil {
			return nil, wrap("scan project", err)
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, wrap("list projects", err)
	}
	return out, nil
}

func (r *projectsRepo) Get(ctx context.Context, id int64) (models.Project, error) {
	p, err := scanProject(r.db.QueryRow(ctx,
		`SELECT `+projectColumns+` FROM projects WHERE id=$1`, id))
	if err != nil {
		return models.Project{}, wrap("get project", err)
	}
	return p, nil
}

func (r *projectsRepo) Create(ctx context.Context, in models.NewProject) (models.Project, error) {
	p, err := scanProject(r.db.QueryRow(ctx,
		`INSERT INTO projects(title, description, insights, technologies, github_url, report_url)
		 VALUES($1,$2,$3,$4,$5,$6)
		 RETURNING `+projectColumns,
		in.Title, in.Description, in.Insights, in.Technologies, in.GithubURL, in.ReportURL,
	))
	if err != nil {
		return models.Project{}, wrap("insert project", err)
	}
	return p, nil
}

func (r *projectsRepo) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := r.db.QueryRow(ctx, `SELECT count(*) FROM projects`).Scan(&n); err != nil {
		return 0, wrap("count projects", err)
	}
	return n, nil
}
