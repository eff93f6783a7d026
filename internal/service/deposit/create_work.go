package deposit

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/heartmarshall/libra-works/internal/domain"
)

// CreateFromRequest builds a draft work for the requester, mints its
// identifier and persists it together with the owner account. Nothing is
// persisted when minting fails.
func (s *Service) CreateFromRequest(ctx context.Context, req domain.DepositRequest) (*domain.Work, error) {
	person := s.resolve(ctx, req.Who)
	email := person.EmailOrDefault(s.cfg.DefaultEmailDomain)

	w := newWork(req, person, email, s.now())

	status, identifier := s.minter.Mint(ctx, w)
	if !succeeded(status) || identifier == "" {
		s.log.ErrorContext(ctx, "identifier mint failed",
			slog.Int64("request_id", req.ID),
			slog.String("who", req.Who),
			slog.Int("status", status),
		)
		return nil, fmt.Errorf("create work for %s: %w", req.Who, &domain.ServiceError{Service: "entityid", Status: status})
	}
	w.Identifier = identifier

	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		if err := s.ensureUser(ctx, person, email); err != nil {
			return err
		}
		return s.works.Save(ctx, w)
	})
	if err != nil {
		return nil, fmt.Errorf("create work for %s: %w", req.Who, err)
	}

	s.audit.Record(ctx, domain.AuditEntry{
		WorkID:         w.ID,
		WorkIdentifier: w.Identifier,
		Action:         domain.AuditActionCreated,
		Actor:          req.Who,
		CreatedAt:      s.now(),
	})
	if s.observer != nil {
		s.observer.ObserveDeposit()
	}

	if status := s.requests.MarkFulfilled(ctx, w); !succeeded(status) {
		s.log.WarnContext(ctx, "deposit request fulfilment not recorded",
			slog.Int64("request_id", req.ID),
			slog.Int("status", status),
		)
	}

	s.log.InfoContext(ctx, "work created",
		slog.String("work_id", w.ID.String()),
		slog.String("identifier", w.Identifier),
		slog.String("who", req.Who),
	)
	return w, nil
}

// resolve returns the directory record of the person. An unreachable or
// empty directory yields a bare record so that the default email is used.
func (s *Service) resolve(ctx context.Context, who string) domain.DirectoryRecord {
	status, rec := s.directory.Lookup(ctx, who)
	if !succeeded(status) || rec == nil {
		s.log.WarnContext(ctx, "directory lookup failed, using default email",
			slog.String("who", who),
			slog.Int("status", status),
		)
		return domain.DirectoryRecord{ID: who}
	}
	if rec.ID == "" {
		rec.ID = who
	}
	return *rec
}

func newWork(req domain.DepositRequest, person domain.DirectoryRecord, email string, now time.Time) *domain.Work {
	w := &domain.Work{
		ID:                uuid.New(),
		Title:             DefaultTitle,
		Abstract:          DefaultDescription,
		AuthorEmail:       email,
		AuthorFirstName:   person.FirstName,
		AuthorLastName:    person.LastName,
		AuthorInstitution: domain.DefaultPublisher,
		Department:        req.Department,
		Degree:            req.Degree,
		Creator:           email,
		Advisers:          []string{DefaultContributor},
		Rights:            DefaultRights,
		License:           DefaultLicense,
		EmbargoState:      domain.EmbargoOpen,
		Draft:             true,
		Visibility:        domain.VisibilityPrivate,
		WorkType:          domain.WorkTypeThesis,
		Publisher:         domain.DefaultPublisher,
		DepositRequestID:  fmt.Sprint(req.ID),
		DateCreated:       now.Truncate(24 * time.Hour),
	}
	w.ReassignDepositor(email)
	return w
}

// ensureUser creates the local account of the owner unless it exists.
func (s *Service) ensureUser(ctx context.Context, person domain.DirectoryRecord, email string) error {
	_, err := s.users.GetByEmail(ctx, email)
	if err == nil {
		return nil
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return fmt.Errorf("find user: %w", err)
	}

	hash, err := s.hash(s.cfg.DefaultPassword)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	u := &domain.User{
		ID:           uuid.New(),
		Email:        email,
		PasswordHash: hash,
		DisplayName:  person.DisplayName,
		Department:   person.Department,
		Office:       person.Office,
		Telephone:    person.Phone,
		Title:        person.Title,
	}
	if err := s.users.Create(ctx, u); err != nil {
		return fmt.Errorf("create user: %w", err)
	}
	s.log.InfoContext(ctx, "user account created", slog.String("who", person.ID))
	return nil
}

func hashPassword(password string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}
