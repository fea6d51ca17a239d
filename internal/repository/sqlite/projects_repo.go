package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/baharkarakas/portfolio-api/internal/models"
)

type projectsRepo struct {
	db  *sql.DB
	now func() time.Time
}

const projectColumns = `id, title, description, insights, technologies, github_url, report_url, created_at`

type scanner interface {
	Scan(dest ...any) error
}

func scanProject(row scanner) (models.Project, error) {
	var (
		p                      models.Project
		insights, technologies sql.NullString
		reportURL              sql.NullString
		err                    error
	)
	if err = row.Scan(&p.ID, &p.Title, &p.Description, &insights, &technologies, &p.GithubURL, &reportURL, &p.CreatedAt); err != nil {
		return models.Project{}, err
	}
	if p.Insights, err = decodeList(insights); err != nil {
		return models.Project{}, fmt.Errorf("decode insights: %w", err)
	}
	if p.Technologies, err = decodeList(technologies); err != nil {
		return models.Project{}, fmt.Errorf("decode technologies: %w", err)
	}
	p.ReportURL = stringPtr(reportURL)
	return p, nil
}

func (r *projectsRepo) List(ctx context.Context) ([]models.Project, error) {
	rows, err := r.db.QueryContext(ctx,
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
	p, err := scanProject(r.db.QueryRowContext(ctx,
		`SELECT `+projectColumns+` FROM projects WHERE id = ?`, id))
	if err != nil {
		return models.Project{}, wrap("get project", err)
	}
	return p, nil
}

func (r *projectsRepo) Create(ctx context.Context, in models.NewProject) (models.Project, error) {
	insights, err := encodeList(in.Insights)
	if err != nil {
		return models.Project{}, fmt.Errorf("encode insights: %w", err)
	}
	technologies, err := encodeList(in.Technologies)
	if err != nil {
		return models.Project{}, fmt.Errorf("encode technologies: %w", err)
	}

	res, err := r.db.ExecContext(ctx,
		`INSERT INTO projects (title, description, insights, technologies, github_url, report_url, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		in.Title, in.Description, insights, technologies, in.GithubURL, nullString(in.ReportURL), r.now(),
	)
	if err != nil {
		return models.Project{}, wrap("insert project", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return models.Project{}, wrap("last insert id", err)
	}
	return r.Get(ctx, id)
}

func (r *projectsRepo) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM projects`).Scan(&n); err != nil {
		return 0, wrap("count projects", err)
	}
	return n, nil
}
