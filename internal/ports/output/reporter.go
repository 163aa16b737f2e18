package output

import "localegen/internal/domain/entities"

// Reporter receives per-target progress during a scaffolding run. It exists
// so the console can print each file as it lands instead of after the fact.
type Reporter interface {
	Wrote(target entities.Target)
	Failed(target entities.Target, err error)
}
