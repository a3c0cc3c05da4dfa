package api

import (
	"database/sql"
	"fmt"
	"log"
	"net/http"

	db "github.com/DeltaPlay/DeltaPlay-Backend/db/sqlc"
	"github.com/DeltaPlay/DeltaPlay-Backend/models"
	"github.com/DeltaPlay/DeltaPlay-Backend/providers"
	"github.com/DeltaPlay/DeltaPlay-Backend/providers/payment"
	"github.com/DeltaPlay/DeltaPlay-Backend/services"
	"github.com/DeltaPlay/DeltaPlay-Backend/services/catalog"
	"github.com/DeltaPlay/DeltaPlay-Backend/services/monitoring/logging"
	"github.com/DeltaPlay/DeltaPlay-Backend/services/order"
	"github.com/DeltaPlay/DeltaPlay-Backend/services/review"
	"github.com/DeltaPlay/DeltaPlay-Backend/services/settlement"
	"github.com/DeltaPlay/DeltaPlay-Backend/services/wallet"
	"github.com/DeltaPlay/DeltaPlay-Backend/utils"
	"github.com/gin-gonic/gin"
	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/shopspring/decimal"
)

var TokenController *utils.JWTToken

type Server struct {
	router   *gin.Engine
	store    *db.Store
	config   *utils.Config
	logger   *logging.Logger
	redis    *services.RedisService
	provider *providers.ProviderService
	gateway  payment.Gateway

	catalogService *catalog.CatalogService
	walletService  *wallet.WalletService
	orderService   *order.OrderService
	reviewService  *review.ReviewService
}

func NewServer(envPath string) *Server {
	c, err := utils.LoadConfig(envPath)
	if err != nil {
		panic(fmt.Sprintf("Could not load config: %v", err))
	}

	conn, err := sql.Open(c.DBDriver, utils.GetDBSource(c, c.DBName))
	if err != nil {
		panic(fmt.Sprintf("Could not load DB: %v", err))
	}

	m, err := migrate.New(
		"file://db/migrations",
		utils.GetDBSource(c, c.DBName),
	)
	if err != nil {
		log.Fatalf("Unable to instantiate the database schema migrator - %v", err)
	}

	if err := m.Up(); err != nil {
		if err != migrate.ErrNoChange {
			log.Fatalf("Unable to migrate up to the latest database schema - %v", err)
		}
	}

	store := db.NewStore(conn)
	g := gin.Default()
	l := logging.NewLogger()
	l.Info("configuration loaded", c.Redact())
	p := providers.NewProviderService()

	r, err := services.NewRedisService(&services.RedisConfig{
		Host:     c.RedisHost,
		Port:     c.RedisPort,
		Password: c.RedisPassword,
	})
	if err != nil {
		log.Fatalf("Unable to connect to Redis - %v", err)
	}

	// Money out of the platform goes through the configured processor;
	// without one every charge and payout is approved locally.
	var gateway payment.Gateway
	if c.PaymentGatewayURL != "" {
		pc := payment.NewPayCoreGateway(c)
		p.AddProvider(pc)
		gateway = pc
	} else {
		l.Warning("no payment gateway configured, using sandbox approvals")
		gateway = payment.NewSandboxGateway()
	}

	orderNumbers, err := utils.NewOrderNumberGenerator(c)
	if err != nil {
		log.Fatalf("Unable to instantiate the order number generator - %v", err)
	}

	walletService := wallet.NewWalletService(store, l)
	coordinator := settlement.NewCoordinator(walletService, l, settlement.Policy{
		CommissionRate:    decimal.NewFromFloat(c.CommissionRate),
		LateCancelFeeRate: decimal.NewFromFloat(c.LateCancelFeeRate),
		PlatformAccountID: c.PlatformAccountID,
	})
	catalogService := catalog.NewCatalogService(store, l)

	g.Use(CORSMiddleware())
	g.Use(l.LoggingMiddleWare())

	TokenController = utils.NewJWTToken(c)

	return &Server{
		router:         g,
		store:          store,
		config:         c,
		logger:         l,
		redis:          r,
		provider:       p,
		gateway:        gateway,
		catalogService: catalogService,
		walletService:  walletService,
		orderService:   order.NewOrderService(store, coordinator, orderNumbers, l, c),
		reviewService:  review.NewReviewService(store, catalogService, l),
	}
}

func (s *Server) Start() {

	dr := models.SuccessResponse{
		Status:  "success",
		Message: "Welcome to DeltaPlay!",
		Version: utils.REVISION,
	}

	s.router.GET("/", func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, dr)
	})

	/// Register Object Routers Below
	Gamers{}.router(s)
	Orders{}.router(s)
	Wallets{}.router(s)
	Reviews{}.router(s)

	s.router.Run(fmt.Sprintf(":%v", s.config.ServerPort))
}
