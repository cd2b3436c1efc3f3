package main

import (
	"context"
	"log"
	"time"

	"github.com/cloudinary/cloudinary-go/v2"

	"nourshop-backend/config"
	"nourshop-backend/controllers"
	"nourshop-backend/messaging"
	"nourshop-backend/routes"
	"nourshop-backend/stores"
)

func main() {
	cfg := config.Load()

	client, err := config.ConnectDB(cfg.MongoURI, cfg.MongoMode)
	if err != nil {
		log.Fatal(err)
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		client.Disconnect(ctx)
	}()

	db := client.Database(cfg.MongoDB)
	st := stores.NewMongo(db)

	var cld *cloudinary.Cloudinary
	if cfg.CloudinaryURL != "" {
		cld, err = cloudinary.NewFromURL(cfg.CloudinaryURL)
		if err != nil {
			log.Fatal("Failed to initialize Cloudinary:", err)
		}
	}

	var events controllers.OrderPublisher
	if cfg.AmqpURL != "" {
		publisher, err := messaging.NewPublisher(cfg.AmqpURL, cfg.OrderQueue)
		if err != nil {
			log.Fatal("Failed to initialize RabbitMQ publisher:", err)
		}
		defer publisher.Close()
		events = publisher
	}

	// Provisioning admin dilakukan di sini, bukan lewat endpoint HTTP.
	if cfg.AdminUsername != "" && cfg.AdminPassword != "" {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		if err := controllers.SeedAdmin(ctx, st.Admins, cfg.AdminUsername, cfg.AdminPassword); err != nil {
			cancel()
			log.Fatal("Failed to seed admin:", err)
		}
		cancel()
		log.Printf("Admin %q provisioned", cfg.AdminUsername)
	}

	ctrl := &controllers.Controller{
		Products:        st.Products,
		Orders:          st.Orders,
		Admins:          st.Admins,
		Cld:             cld,
		Events:          events,
		PasetoSecretKey: cfg.PasetoSecretKey,
		Ping: func(ctx context.Context) error {
			return client.Ping(ctx, nil)
		},
	}

	r := routes.Setup(ctrl, cfg.Env)
	log.Printf("Server running on port %s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
