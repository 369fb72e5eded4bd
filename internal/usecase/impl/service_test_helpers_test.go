package impl

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"bazaar/config"
	"bazaar/internal/domain/entity"
	"bazaar/internal/domain/service"
	"bazaar/internal/errors"
	"bazaar/internal/infra/auth"
	"bazaar/internal/infra/persistence/model"
	"bazaar/internal/infra/persistence/postgres"
	"bazaar/internal/usecase"
)

// testEnv wires real repositories over an in-memory database with fake
// mail and feed adapters, mirroring how the services run in production.
type testEnv struct {
	db      *gorm.DB
	mailer  *recordingMailer
	loader  *stubFeedLoader
	account usecase.AccountUsecase
	contact usecase.ContactUsecase
	catalog usecase.CatalogUsecase
	basket  usecase.BasketUsecase
	order   usecase.OrderUsecase
	partner usecase.PartnerUsecase
}

// recordingMailer captures outgoing mail instead of sending it.
type recordingMailer struct {
	mu   sync.Mutex
	sent []sentMail
	fail bool
}

type sentMail struct {
	Subject string
	Body    string
	To      []string
}

func (m *recordingMailer) Send(_ context.Context, subject, body string, to []string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.fail {
		return errors.New("smtp unavailable")
	}

	m.sent = append(m.sent, sentMail{Subject: subject, Body: body, To: to})

	return nil
}

func (m *recordingMailer) sentMails() []sentMail {
	m.mu.Lock()
	defer m.mu.Unlock()

	return append([]sentMail(nil), m.sent...)
}

// stubFeedLoader hands back a canned feed or error regardless of the URL,
// as long as the URL itself is well formed.
type stubFeedLoader struct {
	feed *service.Feed
	err  error
}

func (l *stubFeedLoader) Load(_ context.Context, _ string) (*service.Feed, error) {
	if l.err != nil {
		return nil, l.err
	}

	return l.feed, nil
}

func testStackConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Auth = &config.AuthConfig{BcryptCost: 4, TokenLength: 20}
	cfg.PasswordStrength = &config.PasswordStrengthConfig{
		MinLength:         8,
		MaxLength:         128,
		RejectNumericOnly: true,
		RejectCommon:      true,
		RejectSimilar:     true,
	}

	return cfg
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		SkipDefaultTransaction: true,
		TranslateError:         true,
		Logger:                 logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(model.All()...))

	cfg := testStackConfig()
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	txManager := postgres.NewTransactionManager(db)
	mailer := &recordingMailer{}
	loader := &stubFeedLoader{}

	env := &testEnv{db: db, mailer: mailer, loader: loader}

	env.account = NewAccountService(AccountServiceParams{
		TxManager:   txManager,
		UserRepo:    postgres.NewUserRepository(db),
		TokenRepo:   postgres.NewTokenRepository(db),
		Hasher:      auth.NewBcryptHasher(cfg),
		TokenIssuer: auth.NewTokenIssuer(cfg),
		Mailer:      mailer,
		Logger:      log,
	})
	env.contact = NewContactService(ContactServiceParams{
		ContactRepo: postgres.NewContactRepository(db),
		Logger:      log,
	})
	env.catalog = NewCatalogService(CatalogServiceParams{
		CatalogRepo: postgres.NewCatalogRepository(db),
		ShopRepo:    postgres.NewShopRepository(db),
		Logger:      log,
	})
	env.basket = NewBasketService(BasketServiceParams{
		TxManager: txManager,
		OrderRepo: postgres.NewOrderRepository(db),
		Logger:    log,
	})
	env.order = NewOrderService(OrderServiceParams{
		TxManager: txManager,
		OrderRepo: postgres.NewOrderRepository(db),
		Mailer:    mailer,
		Logger:    log,
	})
	env.partner = NewPartnerService(PartnerServiceParams{
		TxManager:  txManager,
		ShopRepo:   postgres.NewShopRepository(db),
		OrderRepo:  postgres.NewOrderRepository(db),
		FeedLoader: loader,
		Logger:     log,
	})

	return env
}

// registerActive registers an account and activates it through the mailed
// confirmation token, returning the user.
func (env *testEnv) registerActive(t *testing.T, email string, userType entity.UserType) *entity.User {
	t.Helper()

	out, err := env.account.Register(context.Background(), usecase.RegisterInput{
		FirstName: "Test",
		LastName:  "User",
		Email:     email,
		Password:  "correct-horse-battery",
		Type:      userType,
	})
	require.NoError(t, err)

	mails := env.mailer.sentMails()
	require.NotEmpty(t, mails)
	token := mails[len(mails)-1].Body

	require.NoError(t, env.account.Confirm(context.Background(), usecase.ConfirmInput{
		Email: email,
		Token: token,
	}))

	return out.User
}

// loginToken logs the user in and returns the bearer key.
func (env *testEnv) loginToken(t *testing.T, email string) string {
	t.Helper()

	out, err := env.account.Login(context.Background(), usecase.LoginInput{
		Email:    email,
		Password: "correct-horse-battery",
	})
	require.NoError(t, err)

	return out.Token
}

// sampleFeed builds the canned partner document used across import tests.
func sampleFeed() *service.Feed {
	rrc := int64(116990)

	return &service.Feed{
		ShopName: "Gadget Planet",
		Categories: []service.FeedCategory{
			{ID: 224, Name: "Smartphones"},
			{ID: 15, Name: "Accessories"},
		},
		Goods: []service.FeedGood{
			{
				Name:       "iPhone XS Max 512GB",
				CategoryID: 224,
				Model:      "apple/iphone/xs-max",
				Price:      110000,
				PriceRRC:   &rrc,
				Quantity:   14,
				Parameters: map[string]uint{"memory": 512, "diagonal": 6},
			},
			{
				Name:       "Clear case",
				CategoryID: 15,
				Model:      "generic/case",
				Price:      500,
				Quantity:   100,
			},
		},
	}
}

// importSampleFeed runs a full import for a fresh shop user and returns the
// shop's user together with the import summary.
func (env *testEnv) importSampleFeed(t *testing.T, email string) (*entity.User, *usecase.ImportFeedOutput) {
	t.Helper()

	shopUser := env.registerActive(t, email, entity.UserTypeShop)
	env.loader.feed = sampleFeed()

	out, err := env.partner.ImportFeed(context.Background(), shopUser.ID, "https://partner.example.com/feed.yaml")
	require.NoError(t, err)

	return shopUser, out
}
