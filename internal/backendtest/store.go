package backendtest

import (
	"slices"
	"strings"
	"sync"

	"github.com/gofrs/uuid/v5"

	"github.com/samandr77/microservices/onboarding/internal/entity"
)

// Store keeps saved applications in memory in insertion order.
type Store struct {
	mu   sync.Mutex
	apps []entity.Application
}

func NewStore(apps ...entity.Application) *Store {
	s := &Store{}
	for _, app := range apps {
		s.Save(app)
	}

	return s
}

// Save stores app, replacing an application with the same id. An application without an id
// gets a new one.
func (s *Store) Save(app entity.Application) entity.Application {
	s.mu.Lock()
	defer s.mu.Unlock()

	if app.ApplicationID == "" {
		app.ApplicationID = uuid.Must(uuid.NewV4()).String()
	}

	i := slices.IndexFunc(s.apps, func(a entity.Application) bool {
		return a.ApplicationID == app.ApplicationID
	})
	if i >= 0 {
		s.apps[i] = app
	} else {
		s.apps = append(s.apps, app)
	}

	return app
}

func (s *Store) All() []entity.Application {
	s.mu.Lock()
	defer s.mu.Unlock()

	return slices.Clone(s.apps)
}

// List returns one page of the applications matching search. page is one-based.
func (s *Store) List(page, size int, search string) entity.Page {
	s.mu.Lock()
	defer s.mu.Unlock()

	search = strings.ToLower(strings.TrimSpace(search))

	var matched []entity.Application

	for _, app := range s.apps {
		if search != "" && !matches(app, search) {
			continue
		}

		matched = append(matched, app)
	}

	total := len(matched)
	out := entity.Page{
		Items:         []entity.Application{},
		TotalElements: total,
		TotalPages:    (total + size - 1) / size,
	}

	from := (page - 1) * size
	if from >= total {
		return out
	}

	out.Items = slices.Clone(matched[from:min(from+size, total)])

	return out
}

func matches(app entity.Application, search string) bool {
	for _, v := range []string{app.Name, app.Firm, app.DBA, app.City, app.ContactPerson, app.Mobile} {
		if strings.Contains(strings.ToLower(v), search) {
			return true
		}
	}

	return false
}
