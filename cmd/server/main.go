package main

import (
	"log"
	"net/http"
	"os"

	"github.com/gorilla/handlers"
	"github.com/joho/godotenv"
	"github.com/robfig/cron/v3"

	"consulting360/internal/api"
	"consulting360/internal/config"
	"consulting360/internal/hubspot"
	"consulting360/internal/service"
)

func main() {
	godotenv.Load()
	cfg := config.Load()

	hubspotClient := hubspot.NewClient(cfg.MeetingSlug)
	sender := service.NewSenderService(cfg)

	availabilitySvc := service.NewAvailabilityService(hubspotClient, cfg.MeetingsHost)
	bookingSvc := service.NewBookingService(hubspotClient, sender)
	strategistSvc := service.NewStrategistService(cfg.GeminiAPIKey)

	availabilityHandler := api.NewAvailabilityHandler(availabilitySvc)
	bookingHandler := api.NewBookingHandler(bookingSvc)
	strategistHandler := api.NewStrategistHandler(strategistSvc, sender)

	r := api.NewRouter(availabilityHandler, bookingHandler, strategistHandler)

	if cfg.ProbeCron != "" {
		probe := service.NewProbeService(availabilitySvc, cfg.ProbeTimezone)
		c := cron.New()
		if _, err := c.AddFunc(cfg.ProbeCron, func() {
			if err := probe.CheckUpstream(); err != nil {
				log.Printf("%v", err)
			}
		}); err != nil {
			log.Fatalf("Invalid AVAILABILITY_PROBE_CRON: %v", err)
		}
		c.Start()
		log.Printf("Availability probe scheduled: %s", cfg.ProbeCron)
	}

	cors := handlers.CORS(
		handlers.AllowedOrigins([]string{"*"}),
		handlers.AllowedMethods([]string{"GET", "POST", "OPTIONS"}),
		handlers.AllowedHeaders([]string{"Content-Type"}),
	)

	log.Printf("Server running on port %s (slug %s, host %s)", cfg.Port, cfg.MeetingSlug, cfg.MeetingsHost)
	log.Fatal(http.ListenAndServe(":"+cfg.Port, handlers.LoggingHandler(os.Stdout, cors(r))))
}
