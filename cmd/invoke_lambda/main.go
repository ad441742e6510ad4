package main

import (
	"context"
	"encoding/json"
	"log"
	"log/slog"
	"os"

	lambdaevents "github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"

	"github.com/sandeepmed2/property-registration/pkg/bootstrap"
	"github.com/sandeepmed2/property-registration/pkg/config"
	"github.com/sandeepmed2/property-registration/pkg/invoke"
	"github.com/sandeepmed2/property-registration/pkg/registry"
)

// invoker is the part of invoke.Dispatcher the handler needs.
type invoker interface {
	Invoke(ctx context.Context, req invoke.Request) (any, error)
}

type handler struct {
	dispatcher invoker
	logger     *slog.Logger
}

// HandleRequest runs one named invocation per SQS message. Rejected invocations
// committed nothing and would be rejected again, so only internal failures are
// reported back for redelivery.
func (h *handler) HandleRequest(ctx context.Context, sqsEvent lambdaevents.SQSEvent) (lambdaevents.SQSEventResponse, error) {
	var resp lambdaevents.SQSEventResponse

	for _, message := range sqsEvent.Records {
		logger := h.logger.With("message_id", message.MessageId)

		var req invoke.Request
		if err := json.Unmarshal([]byte(message.Body), &req); err != nil {
			logger.Error("failed to unmarshal invocation, dropping message", "error", err)
			continue
		}
		logger = logger.With("operation", req.Operation)

		result, err := h.dispatcher.Invoke(ctx, req)
		if err != nil {
			if kind := registry.Kind(err); kind != registry.KindInternal {
				logger.Warn("invocation rejected", "kind", kind, "error", err)
				continue
			}
			logger.Error("invocation failed", "error", err)
			resp.BatchItemFailures = append(resp.BatchItemFailures, lambdaevents.SQSBatchItemFailure{
				ItemIdentifier: message.MessageId,
			})
			continue
		}

		logger.Info("invocation committed", "result", result)
	}

	return resp, nil
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.LogLevel}))

	// Initialize dependencies once per container.
	ctx := context.Background()
	ledger, _, err := bootstrap.NewLedger(ctx, cfg, logger)
	if err != nil {
		log.Fatalf("unable to open ledger: %v", err)
	}
	publisher, _, err := bootstrap.NewPublisher(ctx, cfg, logger)
	if err != nil {
		log.Fatalf("unable to create event publisher: %v", err)
	}

	svc := registry.NewService(ledger, registry.WithPublisher(publisher), registry.WithLogger(logger))
	h := &handler{dispatcher: invoke.NewDispatcher(svc), logger: logger}

	lambda.Start(h.HandleRequest)
}
