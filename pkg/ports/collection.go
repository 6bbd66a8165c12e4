package ports

import "time"

type Collection struct {
	Repo  DescriptorRepository
	Clock func() time.Time
}
