package classifier

import (
	"context"
	"testing"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	apperrors "github.com/SivaBalaji-AR/final-year-project/internal/errors"
	"github.com/SivaBalaji-AR/final-year-project/internal/resilience"
	pb "github.com/SivaBalaji-AR/final-year-project/pkg/pb"
)

type fakeSvc struct {
	responses map[string]*pb.DetectResponse
	errs      map[string]error
	calls     []string
}

func (f *fakeSvc) Detect(ctx context.Context, req *pb.DetectRequest, opts ...grpc.CallOption) (*pb.DetectResponse, error) {
	f.calls = append(f.calls, req.Backend)
	if err, ok := f.errs[req.Backend]; ok {
		return nil, err
	}
	return f.responses[req.Backend], nil
}

func newTestClient(svc *fakeSvc, order []string) *Client {
	breakers := make(map[string]*resilience.Breaker, len(order))
	for _, name := range order {
		breakers[name] = resilience.New("classifier-"+name, resilience.Config{})
	}
	return &Client{
		svc:      svc,
		order:    order,
		breakers: breakers,
		timeout:  time.Second,
	}
}

func TestDetectPrefersFirstBackend(t *testing.T) {
	svc := &fakeSvc{
		responses: map[string]*pb.DetectResponse{
			BackendLandmark: {
				FaceFound: true,
				Scores:    &pb.ExpressionScores{Happy: 0.9, Neutral: 0.1},
			},
		},
	}
	c := newTestClient(svc, []string{BackendLandmark, BackendBlaze})

	expr, found, err := c.Detect(context.Background(), []byte{0xFF, 0xD8})
	if err != nil {
		t.Fatalf("Detect failed: %v", err)
	}
	if !found {
		t.Fatal("found = false, want true")
	}
	if expr.Happy != 0.9 {
		t.Errorf("Happy = %f, want 0.9", expr.Happy)
	}
	if len(svc.calls) != 1 || svc.calls[0] != BackendLandmark {
		t.Errorf("calls = %v, want [landmark]", svc.calls)
	}
}

func TestDetectFallsBackOnFailure(t *testing.T) {
	svc := &fakeSvc{
		errs: map[string]error{
			BackendLandmark: status.Error(codes.Unavailable, "model loading"),
		},
		responses: map[string]*pb.DetectResponse{
			BackendBlaze: {
				FaceFound: true,
				Scores:    &pb.ExpressionScores{Neutral: 1},
			},
		},
	}
	c := newTestClient(svc, []string{BackendLandmark, BackendBlaze})

	_, found, err := c.Detect(context.Background(), []byte{1})
	if err != nil {
		t.Fatalf("Detect failed: %v", err)
	}
	if !found {
		t.Error("found = false, want true after fallback")
	}
	if len(svc.calls) != 2 {
		t.Errorf("calls = %v, want landmark then blaze", svc.calls)
	}
}

func TestDetectNoFaceIsNotError(t *testing.T) {
	svc := &fakeSvc{
		responses: map[string]*pb.DetectResponse{
			BackendLandmark: {FaceFound: false},
		},
	}
	c := newTestClient(svc, []string{BackendLandmark})

	_, found, err := c.Detect(context.Background(), []byte{1})
	if err != nil {
		t.Fatalf("Detect failed: %v", err)
	}
	if found {
		t.Error("found = true, want false for no face")
	}
}

func TestDetectAllBackendsDown(t *testing.T) {
	svc := &fakeSvc{
		errs: map[string]error{
			BackendLandmark: status.Error(codes.Unavailable, "down"),
			BackendBlaze:    status.Error(codes.Unavailable, "down"),
		},
	}
	c := newTestClient(svc, []string{BackendLandmark, BackendBlaze})

	_, _, err := c.Detect(context.Background(), []byte{1})
	if err == nil {
		t.Fatal("Detect should fail when all backends are down")
	}
	if !apperrors.IsKind(err, apperrors.ModelUnavailable) {
		t.Errorf("error kind = %v, want ModelUnavailable", err)
	}
}

func TestDetectSkipsOpenBreaker(t *testing.T) {
	svc := &fakeSvc{
		responses: map[string]*pb.DetectResponse{
			BackendBlaze: {
				FaceFound: true,
				Scores:    &pb.ExpressionScores{Neutral: 1},
			},
		},
	}
	c := newTestClient(svc, []string{BackendLandmark, BackendBlaze})
	for i := 0; i < resilience.DefaultThreshold; i++ {
		c.breakers[BackendLandmark].Failure()
	}

	_, found, err := c.Detect(context.Background(), []byte{1})
	if err != nil {
		t.Fatalf("Detect failed: %v", err)
	}
	if !found {
		t.Error("found = false, want true via unbroken backend")
	}
	for _, backend := range svc.calls {
		if backend == BackendLandmark {
			t.Error("open breaker backend should be skipped")
		}
	}
}

func TestDetectMalformedFrameDoesNotTripBreaker(t *testing.T) {
	svc := &fakeSvc{
		errs: map[string]error{
			BackendLandmark: status.Error(codes.InvalidArgument, "bad jpeg"),
		},
	}
	c := newTestClient(svc, []string{BackendLandmark})

	for i := 0; i < resilience.DefaultThreshold+1; i++ {
		_, _, _ = c.Detect(context.Background(), []byte{1})
	}

	if c.breakers[BackendLandmark].State() != resilience.Closed {
		t.Error("malformed input should not open the breaker")
	}
}
