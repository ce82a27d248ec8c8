package cleanup

import (
	"sync"

	"github.com/sirupsen/logrus"
)

type Job struct {
	Name string
	F    func() error
}

var (
	mu   sync.Mutex
	jobs []*Job
)

func Register(j *Job) {
	mu.Lock()
	defer mu.Unlock()
	jobs = append(jobs, j)
}

// CleanUp runs registered jobs in reverse registration order and forgets them.
func CleanUp() {
	mu.Lock()
	pending := jobs
	jobs = nil
	mu.Unlock()
	for i := len(pending) - 1; i >= 0; i-- {
		j := pending[i]
		logrus.WithField("job", j.Name).Info("cleanup job started")
		if err := j.F(); err != nil {
			logrus.WithField("job", j.Name).WithError(err).Error("cleanup job finished with error")
			continue
		}
		logrus.WithField("job", j.Name).Info("cleaned")
	}
}
