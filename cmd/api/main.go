package main

import (
	"context"
	"log"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rabbitmq/amqp091-go"

	"github.com/xavierca1/coldcall-backend/internal/infra/http/handlers"
	"github.com/xavierca1/coldcall-backend/internal/infra/http/middleware"
	"github.com/xavierca1/coldcall-backend/internal/infra/integration/groq"
	"github.com/xavierca1/coldcall-backend/internal/infra/jobs"
	"github.com/xavierca1/coldcall-backend/internal/infra/mail"
	"github.com/xavierca1/coldcall-backend/internal/infra/queue"
	"github.com/xavierca1/coldcall-backend/internal/infra/sheets"
	"github.com/xavierca1/coldcall-backend/internal/infra/storage"
	"github.com/xavierca1/coldcall-backend/internal/usecase"
)

func main() {
	godotenv.Load()

	ctx := context.Background()

	// 1. Store (planilha)
	sheetsClient, err := sheets.NewClient(
		ctx,
		[]byte(os.Getenv("GOOGLE_SERVICE_ACCOUNT_JSON")),
		os.Getenv("SPREADSHEET_ID"),
	)
	if err != nil {
		log.Fatalf("❌ Sheets indisponível: %v", err)
	}

	contactRepo := sheets.NewContactRepository(sheetsClient)
	callLogRepo := sheets.NewCallLogRepository(sheetsClient)

	// 2. Integrações
	groqClient := groq.NewClient(os.Getenv("GROQ_API_KEY"))

	supabase := storage.NewSupabaseClient(os.Getenv("SUPABASE_URL"), os.Getenv("SUPABASE_KEY"))
	if err := supabase.EnsureBucket(); err != nil {
		log.Printf("⚠️ Bucket de gravações indisponível: %v", err)
	}

	// 3. Fila + Worker de transcrição (opcional em dev: sem host, sem fila)
	var producer *queue.RabbitMQProducer
	var rabbitMQ *queue.RabbitMQ
	if host := os.Getenv("RABBITMQ_HOST"); host != "" {
		rabbitMQ, err = queue.NewRabbitMQ(
			os.Getenv("RABBITMQ_USER"),
			os.Getenv("RABBITMQ_PASS"),
			host,
			os.Getenv("RABBITMQ_PORT"),
		)
		if err != nil {
			log.Fatalf("❌ RabbitMQ indisponível: %v", err)
		}
		defer rabbitMQ.Conn.Close()
		defer rabbitMQ.Ch.Close()

		producer = queue.NewProducer(rabbitMQ.Conn, rabbitMQ.Ch)

		worker := queue.NewWorker(rabbitMQ.Ch, groqClient, contactRepo)
		go worker.Start(queue.QueueName)
	} else {
		log.Println("⚠️ RABBITMQ_HOST vazio: transcrição assíncrona desligada")
	}

	// 4. UseCases
	var producerIface usecase.QueueProducerInterface
	if producer != nil {
		producerIface = producer
	}
	logCallUC := usecase.NewLogCallUseCase(contactRepo, callLogRepo, producerIface)
	callPlanUC := usecase.NewCallPlanUseCase(contactRepo)
	dashboardUC := usecase.NewDashboardUseCase(contactRepo, callLogRepo)

	// 5. Digest diário do plano (só com destinatário configurado)
	if digestTo := os.Getenv("DIGEST_TO"); digestTo != "" {
		mailSender := mail.NewEmailSender(
			os.Getenv("MAIL_HOST"), 587, os.Getenv("MAIL_USER"), os.Getenv("MAIL_PASS"),
			os.Getenv("MAIL_FROM"),
		)
		digestJob := jobs.NewPlanDigestJob(callPlanUC, mailSender, digestTo)
		if err := digestJob.Start(); err != nil {
			log.Printf("⚠️ Falha ao agendar digest: %v", err)
		}
		defer digestJob.Stop()
	}

	// 6. Handlers
	contactHandler := handlers.NewContactHandler(contactRepo)
	callHandler := handlers.NewCallHandler(logCallUC, contactRepo, callLogRepo)
	callPlanHandler := handlers.NewCallPlanHandler(callPlanUC)
	dashboardHandler := handlers.NewDashboardHandler(dashboardUC)
	recordingHandler := handlers.NewRecordingHandler(supabase, groqClient, contactRepo)

	var amqpConn *amqp091.Connection
	if rabbitMQ != nil {
		amqpConn = rabbitMQ.Conn
	}
	healthHandler := handlers.NewHealthHandler(amqpConn)

	// 7. Router
	r := chi.NewRouter()
	r.Use(chimiddleware.Logger)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Authorization", "Content-Type", "X-API-Key"},
	}))
	r.Use(middleware.Metrics)

	r.Get("/health", healthHandler.Handle)
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api", func(api chi.Router) {
		api.Use(middleware.Auth(os.Getenv("API_KEY"), os.Getenv("GOOGLE_CLIENT_ID")))

		api.Route("/contacts", func(c chi.Router) {
			c.Get("/", contactHandler.List)
			c.Post("/", contactHandler.Create)
			c.Get("/{id}", contactHandler.Get)
			c.Get("/{id}/calls", callHandler.History)
			c.Put("/{id}", contactHandler.Update)
			c.Delete("/{id}", contactHandler.Delete)
		})

		api.Post("/calls/log", callHandler.Handle)
		api.Get("/callplan/today", callPlanHandler.Handle)
		api.Get("/dashboard/stats", dashboardHandler.Handle)

		api.Route("/recordings", func(rec chi.Router) {
			rec.Post("/upload", recordingHandler.Upload)
			rec.Post("/transcribe", recordingHandler.Transcribe)
			rec.Post("/summarize", recordingHandler.Summarize)
		})
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Printf("🔥 AICC backend rodando na porta :%s", port)
	http.ListenAndServe(":"+port, r)
}
