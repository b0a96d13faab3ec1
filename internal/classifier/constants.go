package classifier

import "time"

// Backend names understood by the sidecar. Landmark is the full face
// mesh model (accurate, slower); blaze is the lightweight detector
// (fast, coarser scores). The fallback order runs accurate→fast.
const (
	BackendLandmark = "landmark"
	BackendBlaze    = "blaze"
)

// DetectTimeout bounds one inference call; the visual tick period is
// 400ms, so a slow call must fail before it can stall two ticks.
const DetectTimeout = 700 * time.Millisecond
