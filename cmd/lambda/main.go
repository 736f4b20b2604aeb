package main

import (
	"context"

	"github.com/aws/aws-lambda-go/lambda"
	"github.com/awslabs/aws-lambda-go-api-proxy/httpadapter"
	"github.com/saulo-duarte/sambat-api/internal/config"
	"github.com/saulo-duarte/sambat-api/internal/container"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		config.Log.WithError(err).Fatal("Failed to load configuration")
	}

	c, err := container.New(context.Background(), cfg)
	if err != nil {
		config.Log.WithError(err).Fatal("Failed to initialise container")
	}

	lambda.Start(httpadapter.NewV2(c.Router()).ProxyWithContext)
}
