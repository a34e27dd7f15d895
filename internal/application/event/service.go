package event

// Service executes validated CRUD and range-query operations against the
// event store. All operations are synchronous: no caching, no retries, and a
// store failure surfaces immediately to the caller.
type Service struct {
	repo  EventRepo
	clock Clock
}

func New(repo EventRepo, clock Clock) *Service {
	return &Service{repo: repo, clock: clock}
}
