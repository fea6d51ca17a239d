package validate

import (
	"regexp"
	"strings"

	"github.com/jellydator/validation"
	"github.com/jellydator/validation/is"

	"github.com/baharkarakas/portfolio-api/internal/models"
)

// Limits mirror the column sizes of the persistence schema.
const (
	MaxTitleLen = 255
	MaxURLLen   = 255
	MaxNameLen  = 100
	MaxEmailLen = 255
)

// noNUL rejects text the relational store refuses to keep.
var noNUL = validation.Match(regexp.MustCompile(`^[^\x00]*$`)).Error("must not contain NUL characters")

type ProjectInput struct {
	Title        string   `json:"title"`
	Description  string   `json:"description"`
	Insights     []string `json:"insights"`
	Technologies []string `json:"technologies"`
	GithubURL    string   `json:"githubUrl"`
	ReportURL    *string  `json:"reportUrl"`
}

// Normalize trims strings and turns blank optionals into absent ones.
func (p *ProjectInput) Normalize() {
	p.Title = strings.TrimSpace(p.Title)
	p.Description = strings.TrimSpace(p.Description)
	p.GithubURL = strings.TrimSpace(p.GithubURL)
	p.ReportURL = trimPtr(p.ReportURL)
}

func (p ProjectInput) Validate() error {
	return validation.ValidateStruct(&p,
		validation.Field(&p.Title, validation.Required, validation.RuneLength(1, MaxTitleLen), noNUL),
		validation.Field(&p.Description, validation.Required, noNUL),
		validation.Field(&p.GithubURL, validation.Required, validation.RuneLength(1, MaxURLLen), noNUL),
		validation.Field(&p.ReportURL, validation.RuneLength(0, MaxURLLen), noNUL),
		validation.Field(&p.Insights, validation.Each(validation.Required, noNUL)),
		validation.Field(&p.Technologies, validation.Each(validation.Required, noNUL)),
	)
}

func (p ProjectInput) ToModel() models.NewProject {
	return models.NewProject{
		Title:        p.Title,
		Description:  p.Description,
		Insights:     p.Insights,
		Technologies: p.Technologies,
		GithubURL:    p.GithubURL,
		ReportURL:    p.ReportURL,
	}
}

type ContactInput struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

func (c *ContactInput) Normalize() {
	c.Name = strings.TrimSpace(c.Name)
	c.Email = strings.TrimSpace(c.Email)
	c.Message = strings.TrimSpace(c.Message)
}

func (c ContactInput) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.Name, validation.Required, validation.RuneLength(1, MaxNameLen), noNUL),
		validation.Field(&c.Email, validation.Required, validation.RuneLength(1, MaxEmailLen), noNUL, is.EmailFormat),
		validation.Field(&c.Message, validation.Required, noNUL),
	)
}

func (c ContactInput) ToModel() models.NewContactMessage {
	return models.NewContactMessage{Name: c.Name, Email: c.Email, Message: c.Message}
}

type UserInput struct {
	Username string  `json:"username"`
	Password string  `json:"password"`
	Email    *string `json:"email"`
}

// Normalize trims the username and email; the password is kept verbatim.
func (u *UserInput) Normalize() {
	u.Username = strings.TrimSpace(u.Username)
	u.Email = trimPtr(u.Email)
}

func (u UserInput) Validate() error {
	return validation.ValidateStruct(&u,
		validation.Field(&u.Username, validation.Required, noNUL),
		validation.Field(&u.Password, validation.Required),
		validation.Field(&u.Email, noNUL, is.EmailFormat),
	)
}
