// Package deposit creates draft works from deposit authorizations.
package deposit

import (
	"context"
	"log/slog"
	"time"

	"github.com/heartmarshall/libra-works/internal/domain"
)

// Placeholder metadata of a freshly created work.
const (
	DefaultTitle       = "Enter your title here"
	DefaultDescription = "Enter your description here"
	DefaultContributor = "Enter your contributors here"
	DefaultRights      = "Determine your rights assignments here"
	DefaultLicense     = "None"
)

type directory interface {
	Lookup(ctx context.Context, personID string) (int, *domain.DirectoryRecord)
}

type minter interface {
	Mint(ctx context.Context, w *domain.Work) (int, string)
}

type requestTracker interface {
	ListSince(ctx context.Context, cursor int64) (int, []domain.DepositRequest)
	MarkFulfilled(ctx context.Context, w *domain.Work) int
}

type userRepo interface {
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	Create(ctx context.Context, u *domain.User) error
}

type workRepo interface {
	Save(ctx context.Context, w *domain.Work) error
}

type auditRecorder interface {
	Record(ctx context.Context, entry domain.AuditEntry)
}

type cursorStore interface {
	Get(ctx context.Context) (int64, error)
	Set(ctx context.Context, cursor int64) error
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// depositObserver is implemented by the metrics registry.
type depositObserver interface {
	ObserveDeposit()
}

// Config holds the creation defaults.
type Config struct {
	DefaultEmailDomain string
	DefaultPassword    string
}

// Deps groups the collaborators of the deposit service.
type Deps struct {
	Directory directory
	Minter    minter
	Requests  requestTracker
	Users     userRepo
	Works     workRepo
	Audit     auditRecorder
	Cursor    cursorStore
	Tx        txManager
	Observer  depositObserver
}

// Service implements work creation from deposit requests.
type Service struct {
	log       *slog.Logger
	cfg       Config
	directory directory
	minter    minter
	requests  requestTracker
	users     userRepo
	works     workRepo
	audit     auditRecorder
	cursor    cursorStore
	tx        txManager
	observer  depositObserver
	now       func() time.Time
	hash      func(password string) (string, error)
}

// NewService creates a new deposit service.
func NewService(logger *slog.Logger, cfg Config, deps Deps) *Service {
	return &Service{
		log:       logger.With("service", "deposit"),
		cfg:       cfg,
		directory: deps.Directory,
		minter:    deps.Minter,
		requests:  deps.Requests,
		users:     deps.Users,
		works:     deps.Works,
		audit:     deps.Audit,
		cursor:    deps.Cursor,
		tx:        deps.Tx,
		observer:  deps.Observer,
		now:       func() time.Time { return time.Now().UTC() },
		hash:      hashPassword,
	}
}

func succeeded(status int) bool {
	return status >= 200 && status < 300
}
