// File: rentora/main.go
package main

import (
	"context"
	"encoding/json"
	"flag"
	"os"

	"rentora/api"
	"rentora/catalog"
	"rentora/config"
	"rentora/onboarding"
	"rentora/session"
	"rentora/utils"
	"rentora/vehicle"

	"go.uber.org/zap"
)

// logNotifier surfaces wizard outcomes on the structured logger.
type logNotifier struct {
	logger *zap.Logger
}

func (n *logNotifier) Success(msg string) { n.logger.Info(msg) }
func (n *logNotifier) Error(msg string)   { n.logger.Error(msg) }

// logNavigator stands in for the dashboard's wizard router.
type logNavigator struct {
	logger *zap.Logger
}

func (n *logNavigator) Next() { n.logger.Info("advancing to next wizard step") }

func main() {
	vehicleID := flag.String("vehicle", "", "vehicle id to configure")
	editsPath := flag.String("edits", "", "optional JSON file with form-state overrides")
	flag.Parse()

	config.LoadConfig()
	logger := utils.GetLogger()
	utils.InitCache()

	if *vehicleID == "" {
		logger.Sugar().Fatal("main: -vehicle is required")
	}

	tokens := session.NewManager(os.Getenv("RENTORA_API_TOKEN"))
	client := api.NewClient(tokens)

	catalogService := catalog.NewDefaultService(client)
	vehicleService := vehicle.NewDefaultService(client)

	step := onboarding.NewStep(*vehicleID, catalogService, vehicleService, tokens)
	step.Notifier = &logNotifier{logger: logger}
	step.Navigator = &logNavigator{logger: logger}

	ctx := context.Background()
	if err := step.Load(ctx); err != nil {
		logger.Sugar().Fatalf("main: failed to load configuration step: %v", err)
	}

	if *editsPath != "" {
		data, err := os.ReadFile(*editsPath)
		if err != nil {
			logger.Sugar().Fatalf("main: failed to read edits file: %v", err)
		}
		if err := step.Apply(func(form onboarding.FormState) onboarding.FormState {
			// Fields present in the file override the prefilled values.
			merged := form
			if err := json.Unmarshal(data, &merged); err != nil {
				logger.Sugar().Fatalf("main: invalid edits file: %v", err)
			}
			return merged
		}); err != nil {
			logger.Sugar().Fatalf("main: failed to apply edits: %v", err)
		}
	}

	outcome, err := step.Submit(ctx)
	if err != nil {
		logger.Sugar().Fatalf("main: submit failed: %v", err)
	}
	if outcome == onboarding.OutcomeUnchanged {
		logger.Info("configuration unchanged, skipped update call",
			zap.String("vehicleId", *vehicleID))
	} else {
		logger.Info("configuration updated", zap.String("vehicleId", *vehicleID))
	}
}
