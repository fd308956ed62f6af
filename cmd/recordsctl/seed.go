package main

import (
	"context"
	_ "embed"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/heartmarshall/precinct-records/internal/adapter/postgres"
	"github.com/heartmarshall/precinct-records/internal/adapter/postgres/casefile"
	"github.com/heartmarshall/precinct-records/internal/adapter/postgres/incident"
	"github.com/heartmarshall/precinct-records/internal/adapter/postgres/profile"
	"github.com/heartmarshall/precinct-records/internal/domain"
)

//go:embed seed.yaml
var defaultSeed []byte

var seedFile string

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Load development profiles, cases and incidents",
	Long: `Upserts the fixture profiles, then inserts the fixture cases and incidents
in a single transaction. Records are skipped as a whole when any fixture
record number already exists.`,
	Args: cobra.NoArgs,
	RunE: runSeed,
}

func init() {
	seedCmd.Flags().StringVar(&seedFile, "file", "", "fixture YAML to load instead of the built-in set")
}

type seedData struct {
	Profiles  []seedProfile  `yaml:"profiles"`
	Cases     []seedCase     `yaml:"cases"`
	Incidents []seedIncident `yaml:"incidents"`
}

type seedProfile struct {
	ID          uuid.UUID `yaml:"id"`
	Email       string    `yaml:"email"`
	FullName    string    `yaml:"full_name"`
	BadgeNumber string    `yaml:"badge_number"`
	Department  string    `yaml:"department"`
	Role        string    `yaml:"role"`
}

type seedCase struct {
	CaseNumber  string `yaml:"case_number"`
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
	Type        string `yaml:"type"`
	Priority    string `yaml:"priority"`
	CreatedBy   string `yaml:"created_by"`
	AssignedTo  string `yaml:"assigned_to"`
}

type seedIncident struct {
	IncidentNumber string `yaml:"incident_number"`
	Title          string `yaml:"title"`
	Type           string `yaml:"type"`
	Priority       string `yaml:"priority"`
	Location       string `yaml:"location"`
	ReportedBy     string `yaml:"reported_by"`
	CreatedBy      string `yaml:"created_by"`
	Case           string `yaml:"case"`
}

// seedPlan is seedData with every email reference resolved to a profile ID.
type seedPlan struct {
	profiles  []domain.Profile
	cases     []domain.Case
	incidents []plannedIncident
}

type plannedIncident struct {
	incident   domain.Incident
	caseNumber string
}

func parseSeed(raw []byte) (*seedPlan, error) {
	var data seedData
	if err := yaml.Unmarshal(raw, &data); err != nil {
		return nil, fmt.Errorf("parse fixtures: %w", err)
	}

	plan := &seedPlan{}
	byEmail := make(map[string]uuid.UUID, len(data.Profiles))

	for _, p := range data.Profiles {
		role := domain.Role(p.Role)
		if !role.IsValid() {
			return nil, fmt.Errorf("profile %s: invalid role %q", p.Email, p.Role)
		}
		if p.ID == uuid.Nil || p.Email == "" {
			return nil, fmt.Errorf("profile %q: id and email are required", p.Email)
		}
		byEmail[p.Email] = p.ID
		plan.profiles = append(plan.profiles, domain.Profile{
			ID:          p.ID,
			Email:       p.Email,
			FullName:    p.FullName,
			BadgeNumber: optional(p.BadgeNumber),
			Department:  optional(p.Department),
			Role:        role,
		})
	}

	lookup := func(record, email string) (uuid.UUID, error) {
		id, ok := byEmail[email]
		if !ok {
			return uuid.Nil, fmt.Errorf("%s: unknown profile %q", record, email)
		}
		return id, nil
	}

	caseNumbers := make(map[string]bool, len(data.Cases))
	for _, c := range data.Cases {
		createdBy, err := lookup(c.CaseNumber, c.CreatedBy)
		if err != nil {
			return nil, err
		}
		rec := domain.Case{
			CaseNumber:  c.CaseNumber,
			Title:       c.Title,
			Description: optional(c.Description),
			Type:        c.Type,
			CreatedBy:   createdBy,
		}
		if c.Priority != "" {
			p := domain.Priority(c.Priority)
			if !p.IsValid() {
				return nil, fmt.Errorf("%s: invalid priority %q", c.CaseNumber, c.Priority)
			}
			rec.Priority = &p
		}
		if c.AssignedTo != "" {
			assignee, err := lookup(c.CaseNumber, c.AssignedTo)
			if err != nil {
				return nil, err
			}
			rec.AssignedOfficerID = &assignee
		}
		caseNumbers[c.CaseNumber] = true
		plan.cases = append(plan.cases, rec)
	}

	for _, in := range data.Incidents {
		createdBy, err := lookup(in.IncidentNumber, in.CreatedBy)
		if err != nil {
			return nil, err
		}
		if in.Case != "" && !caseNumbers[in.Case] {
			return nil, fmt.Errorf("%s: unknown case %q", in.IncidentNumber, in.Case)
		}
		p := domain.Priority(in.Priority)
		if in.Priority != "" && !p.IsValid() {
			return nil, fmt.Errorf("%s: invalid priority %q", in.IncidentNumber, in.Priority)
		}
		plan.incidents = append(plan.incidents, plannedIncident{
			incident: domain.Incident{
				IncidentNumber: in.IncidentNumber,
				Title:          in.Title,
				Type:           in.Type,
				Priority:       p,
				Location:       in.Location,
				ReportedBy:     optional(in.ReportedBy),
				CreatedBy:      createdBy,
			},
			caseNumber: in.Case,
		})
	}

	return plan, nil
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

type profileUpserter interface {
	Upsert(ctx context.Context, p domain.Profile) (*domain.Profile, error)
}

type caseCreator interface {
	Create(ctx context.Context, c domain.Case) (*domain.Case, error)
}

type incidentCreator interface {
	Create(ctx context.Context, inc domain.Incident) (*domain.Incident, error)
}

type txRunner interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

type seeder struct {
	log       *slog.Logger
	tx        txRunner
	profiles  profileUpserter
	cases     caseCreator
	incidents incidentCreator
}

// apply writes plan. Profiles are idempotent; records go in one transaction
// that is abandoned when any of them already exists.
func (s *seeder) apply(ctx context.Context, plan *seedPlan) error {
	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		for _, p := range plan.profiles {
			if _, err := s.profiles.Upsert(ctx, p); err != nil {
				return fmt.Errorf("upsert profile %s: %w", p.Email, err)
			}
		}
		return nil
	})
	if err != nil {
		return err
	}
	s.log.Info("profiles upserted", slog.Int("count", len(plan.profiles)))

	err = s.tx.RunInTx(ctx, func(ctx context.Context) error {
		caseIDs := make(map[string]uuid.UUID, len(plan.cases))
		for _, c := range plan.cases {
			created, err := s.cases.Create(ctx, c)
			if err != nil {
				return fmt.Errorf("create case %s: %w", c.CaseNumber, err)
			}
			caseIDs[c.CaseNumber] = created.ID
		}
		for _, pi := range plan.incidents {
			inc := pi.incident
			if pi.caseNumber != "" {
				id := caseIDs[pi.caseNumber]
				inc.CaseID = &id
			}
			if _, err := s.incidents.Create(ctx, inc); err != nil {
				return fmt.Errorf("create incident %s: %w", inc.IncidentNumber, err)
			}
		}
		return nil
	})
	if errors.Is(err, domain.ErrAlreadyExists) {
		s.log.Warn("fixture records already present, skipping", slog.String("reason", err.Error()))
		return nil
	}
	if err != nil {
		return err
	}

	s.log.Info("records seeded",
		slog.Int("cases", len(plan.cases)),
		slog.Int("incidents", len(plan.incidents)),
	)
	return nil
}

func runSeed(cmd *cobra.Command, _ []string) error {
	raw := defaultSeed
	if seedFile != "" {
		b, err := os.ReadFile(seedFile)
		if err != nil {
			return fmt.Errorf("read fixtures: %w", err)
		}
		raw = b
	}

	plan, err := parseSeed(raw)
	if err != nil {
		return err
	}

	cfg, logger, err := loadConfig()
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return err
	}
	defer pool.Close()

	s := &seeder{
		log:       logger,
		tx:        postgres.NewTxManager(pool),
		profiles:  profile.New(pool),
		cases:     casefile.New(pool),
		incidents: incident.New(pool),
	}
	return s.apply(ctx, plan)
}
