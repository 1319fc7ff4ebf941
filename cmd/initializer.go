package main

import (
	"context"
	"database/sql"
	"log"
	"net/http"

	firebase "firebase.google.com/go"
	"firebase.google.com/go/messaging"
	_ "github.com/go-sql-driver/mysql"
	"google.golang.org/api/option"

	"influBack/internal/config"
	"influBack/internal/handlers"
	"influBack/internal/repositories"
	"influBack/internal/services"
	"influBack/utils"
)

type application struct {
	errorLog *log.Logger
	infoLog  *log.Logger
	db       *sql.DB
	cfg      config.Config

	hub *Hub

	userRepo     *repositories.UserRepository
	campaignRepo *repositories.CampaignRepository

	messageService *services.MessageService

	userHandler         *handlers.UserHandler
	influencerHandler   *handlers.InfluencerHandler
	brandHandler        *handlers.BrandHandler
	proposalHandler     *handlers.ProposalHandler
	chatHandler         *handlers.ChatHandler
	messageHandler      *handlers.MessageHandler
	contractHandler     *handlers.ContractHandler
	paymentHandler      *handlers.PaymentHandler
	campaignHandler     *handlers.CampaignHandler
	reviewHandler       *handlers.ReviewHandler
	insightHandler      *handlers.InsightHandler
	notificationHandler *handlers.NotificationHandler
	blogHandler         *handlers.BlogHandler
	contactHandler      *handlers.ContactHandler
}

func initializeApp(db *sql.DB, cfg config.Config, errorLog, infoLog *log.Logger) *application {
	// Repositories
	userRepo := &repositories.UserRepository{DB: db}
	influencerRepo := &repositories.InfluencerRepository{DB: db}
	brandRepo := &repositories.BrandRepository{DB: db}
	proposalRepo := &repositories.ProposalRepository{DB: db}
	chatRepo := &repositories.ChatRepository{DB: db}
	messageRepo := &repositories.MessageRepository{DB: db}
	contractRepo := &repositories.ContractRepository{DB: db}
	paymentRepo := &repositories.PaymentRepository{DB: db}
	campaignRepo := &repositories.CampaignRepository{DB: db}
	reviewRepo := &repositories.ReviewRepository{DB: db}
	notificationRepo := &repositories.NotificationRepository{DB: db}
	blogRepo := &repositories.BlogRepository{DB: db}
	contactRepo := &repositories.ContactRepository{DB: db}

	hub := NewHub()

	fcmClient := newFCMClient(cfg.Firebase.CredentialsFile, errorLog)

	tokenManager, err := utils.NewManager(cfg.JWT.SigningKey)
	if err != nil {
		errorLog.Fatal(err)
	}

	openaiClient := services.NewOpenAIClient(&http.Client{}, cfg.OpenAI.APIKey)

	var insightCache services.InsightCache
	if cfg.Redis.Addr != "" {
		insightCache = services.NewRedisInsightCache(cfg.Redis.Addr, cfg.Redis.Password)
	}

	var emailSender *utils.EmailSender
	if cfg.Email.SMTPHost != "" {
		emailSender = utils.NewEmailSender(cfg.Email.SMTPHost, cfg.Email.SMTPPort, cfg.Email.SMTPUser, cfg.Email.SMTPPassword, cfg.Email.FromEmail)
	}

	// Services
	notificationService := &services.NotificationService{NotificationRepo: notificationRepo, UserRepo: userRepo, FCMClient: fcmClient}
	userService := &services.UserService{UserRepo: userRepo, InfluencerRepo: influencerRepo, BrandRepo: brandRepo, TokenManager: tokenManager, SigningKey: cfg.JWT.SigningKey}
	influencerService := &services.InfluencerService{InfluencerRepo: influencerRepo}
	brandService := &services.BrandService{BrandRepo: brandRepo}
	proposalService := &services.ProposalService{ProposalRepo: proposalRepo, Brands: brandRepo, Influencers: influencerRepo, Notifier: notificationService}
	chatService := &services.ChatService{ChatRepo: chatRepo}
	messageService := &services.MessageService{MessageRepo: messageRepo, Rooms: chatRepo, Notifier: notificationService, Hub: hub}
	contractService := &services.ContractService{ContractRepo: contractRepo, ProposalRepo: proposalRepo, Client: openaiClient, Model: cfg.OpenAI.Model, Notifier: notificationService}
	paymentService := &services.PaymentService{PaymentRepo: paymentRepo, ContractRepo: contractRepo, ProposalRepo: proposalRepo, Notifier: notificationService}
	campaignService := &services.CampaignService{CampaignRepo: campaignRepo, ProposalRepo: proposalRepo, Client: openaiClient, Model: cfg.OpenAI.Model}
	reviewService := &services.ReviewService{ReviewRepo: reviewRepo, CampaignRepo: campaignRepo, ProposalRepo: proposalRepo, Ratings: influencerRepo, Notifier: notificationService}
	insightService := &services.InsightService{Influencers: influencerRepo, Client: openaiClient, Model: cfg.OpenAI.Model, Cache: insightCache}
	blogService := &services.BlogService{BlogRepo: blogRepo}
	contactService := &services.ContactService{ContactRepo: contactRepo, Email: emailSender}

	// Handlers
	userHandler := &handlers.UserHandler{Service: userService}
	influencerHandler := &handlers.InfluencerHandler{Service: influencerService}
	brandHandler := &handlers.BrandHandler{Service: brandService}
	proposalHandler := &handlers.ProposalHandler{Service: proposalService}
	chatHandler := &handlers.ChatHandler{Service: chatService}
	messageHandler := &handlers.MessageHandler{Service: messageService}
	contractHandler := &handlers.ContractHandler{Service: contractService}
	paymentHandler := &handlers.PaymentHandler{Service: paymentService}
	campaignHandler := &handlers.CampaignHandler{Service: campaignService}
	reviewHandler := &handlers.ReviewHandler{Service: reviewService}
	insightHandler := &handlers.InsightHandler{Service: insightService}
	notificationHandler := &handlers.NotificationHandler{Service: notificationService}
	blogHandler := &handlers.BlogHandler{Service: blogService}
	contactHandler := &handlers.ContactHandler{Service: contactService}

	return &application{
		errorLog:            errorLog,
		infoLog:             infoLog,
		db:                  db,
		cfg:                 cfg,
		hub:                 hub,
		userRepo:            userRepo,
		campaignRepo:        campaignRepo,
		messageService:      messageService,
		userHandler:         userHandler,
		influencerHandler:   influencerHandler,
		brandHandler:        brandHandler,
		proposalHandler:     proposalHandler,
		chatHandler:         chatHandler,
		messageHandler:      messageHandler,
		contractHandler:     contractHandler,
		paymentHandler:      paymentHandler,
		campaignHandler:     campaignHandler,
		reviewHandler:       reviewHandler,
		insightHandler:      insightHandler,
		notificationHandler: notificationHandler,
		blogHandler:         blogHandler,
		contactHandler:      contactHandler,
	}
}

func newFCMClient(credentialsFile string, errorLog *log.Logger) *messaging.Client {
	if credentialsFile == "" {
		return nil
	}
	ctx := context.Background()
	fbApp, err := firebase.NewApp(ctx, nil, option.WithCredentialsFile(credentialsFile))
	if err != nil {
		errorLog.Printf("firebase init failed, push disabled: %v", err)
		return nil
	}
	client, err := fbApp.Messaging(ctx)
	if err != nil {
		errorLog.Printf("firebase messaging init failed, push disabled: %v", err)
		return nil
	}
	return client
}

func openDB(dsn string) (*sql.DB, error) {
	db, err := sql.Open("mysql", dsn)
	if err != nil {
		log.Printf("Failed to open DB: %v", err)
		return nil, err
	}
	if err = db.Ping(); err != nil {
		log.Printf("Failed to ping DB: %v", err)
		return nil, err
	}
	db.SetMaxIdleConns(35)
	log.Println("Successfully connected to database")
	return db, nil
}
