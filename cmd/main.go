package main

import (
	"os"

	"currencymon/internal/app"

	"github.com/sirupsen/logrus"
)

// @title Currency Monitor API
// @version 1.0
// @description Tracks currencies, users and subscriptions, reconciling rates with the CBR daily feed.
// @BasePath /api/v1
func main() {
	if err := app.Run(); err != nil {
		logrus.WithError(err).Error("Application terminated with error")
		os.Exit(1)
	}
}
