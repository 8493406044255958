package cart

import (
	"encoding/json"
	"os"
	"sync"
)

// FilePersister snapshots a cart to a JSON file so a kiosk restart does not
// lose in-progress carts.
type FilePersister struct {
	mu   sync.Mutex
	path string
}

func NewFilePersister(path string) *FilePersister {
	return &FilePersister{path: path}
}

func (p *FilePersister) Save(items []Item) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	data, err := json.Marshal(items)
	if err != nil {
		return err
	}
	return os.WriteFile(p.path, data, 0o644)
}

func (p *FilePersister) Load() ([]Item, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	data, err := os.ReadFile(p.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}
	var items []Item
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, err
	}
	return items, nil
}
