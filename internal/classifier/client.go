// Package classifier provides a client for the expression inference
// sidecar gRPC service.
package classifier

import (
	"context"
	"log/slog"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	"github.com/SivaBalaji-AR/final-year-project/internal/affect"
	apperrors "github.com/SivaBalaji-AR/final-year-project/internal/errors"
	"github.com/SivaBalaji-AR/final-year-project/internal/resilience"
	"github.com/SivaBalaji-AR/final-year-project/internal/trace"
	pb "github.com/SivaBalaji-AR/final-year-project/pkg/pb"
)

// ErrAllBackendsDown is returned when every backend in the fallback
// order is unavailable.
var ErrAllBackendsDown = apperrors.New(apperrors.ModelUnavailable, "all classifier backends unavailable")

// Client calls the expression sidecar. It tries backends in the
// configured fallback order (accurate first); a backend whose breaker
// is open is skipped until its cooldown elapses.
type Client struct {
	conn     *grpc.ClientConn
	svc      pb.ExpressionServiceClient
	order    []string
	breakers map[string]*resilience.Breaker
	timeout  time.Duration
}

// New connects to the sidecar at addr. order lists backend names from
// most to least preferred; empty means the default landmark→blaze order.
func New(addr string, order []string) (*Client, error) {
	conn, err := grpc.NewClient(addr,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithUnaryInterceptor(trace.UnaryClientInterceptor()),
	)
	if err != nil {
		return nil, err
	}

	if len(order) == 0 {
		order = []string{BackendLandmark, BackendBlaze}
	}
	breakers := make(map[string]*resilience.Breaker, len(order))
	for _, name := range order {
		breakers[name] = resilience.New("classifier-"+name, resilience.Config{})
	}

	return &Client{
		conn:     conn,
		svc:      pb.NewExpressionServiceClient(conn),
		order:    order,
		breakers: breakers,
		timeout:  DetectTimeout,
	}, nil
}

// Detect classifies a JPEG frame. found is false when no face is
// visible, which is a normal outcome rather than an error.
func (c *Client) Detect(ctx context.Context, jpeg []byte) (sample affect.Expression, found bool, err error) {
	var lastErr error = ErrAllBackendsDown

	for _, backend := range c.order {
		br := c.breakers[backend]
		if br.Allow() != nil {
			continue
		}

		callCtx, cancel := context.WithTimeout(ctx, c.timeout)
		resp, err := c.svc.Detect(callCtx, &pb.DetectRequest{
			ImageData: jpeg,
			Format:    "jpeg",
			Backend:   backend,
		})
		cancel()
		if err != nil {
			appErr := apperrors.FromGRPC(err)
			if apperrors.IsRetryable(appErr) {
				br.Failure()
			}
			lastErr = appErr
			slog.Debug("classifier backend failed", "backend", backend, "error", appErr)
			continue
		}
		br.Success()

		if !resp.FaceFound || resp.Scores == nil {
			return affect.Expression{}, false, nil
		}
		s := resp.Scores
		return affect.Expression{
			Angry:     float64(s.Angry),
			Disgusted: float64(s.Disgusted),
			Fearful:   float64(s.Fearful),
			Happy:     float64(s.Happy),
			Neutral:   float64(s.Neutral),
			Sad:       float64(s.Sad),
			Surprised: float64(s.Surprised),
		}, true, nil
	}

	return affect.Expression{}, false, lastErr
}

// Close closes the gRPC connection.
func (c *Client) Close() error {
	return c.conn.Close()
}
