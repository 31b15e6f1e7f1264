package config

import (
	"errors"
	"log"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
)

// CatalogProduct is one menu entry as declared in catalog.yml.
type CatalogProduct struct {
	ID    int64  `mapstructure:"id" json:"id"`
	Name  string `mapstructure:"name" json:"name"`
	Price int64  `mapstructure:"price" json:"price"`
	Image string `mapstructure:"image" json:"image"`
}

// DefaultCatalog returns the built-in menu used when no catalog.yml is
// present.
func DefaultCatalog() []CatalogProduct {
	return []CatalogProduct{
		{ID: 1, Name: "Milk Tea", Price: 45000, Image: "Trasua.png"},
		{ID: 2, Name: "Black Tea", Price: 35000, Image: "Hongtra.png"},
		{ID: 3, Name: "Matcha Latte", Price: 40000, Image: "Matcha.png"},
		{ID: 4, Name: "Lychee Tea", Price: 50000, Image: "Travai.png"},
		{ID: 5, Name: "Lemon Tea", Price: 38000, Image: "Trachanh.png"},
		{ID: 6, Name: "Blueberry Yakult", Price: 55000, Image: "Blueberry Yakult.png"},
		{ID: 7, Name: "Oolong Tea", Price: 55000, Image: "Bonmua.png"},
		{ID: 8, Name: "Taro Milk Tea", Price: 50000, Image: "Khoaimon.png"},
	}
}

// CatalogHolder serves the current catalog and hot-reloads it when
// catalog.yml changes on disk.
type CatalogHolder struct {
	current atomic.Value // holds []CatalogProduct

	mu       sync.Mutex
	onReload []func([]CatalogProduct)
}

func NewCatalogHolder() (*CatalogHolder, error) {
	v := viper.New()

	v.SetConfigName("catalog")
	v.SetConfigType("yml")
	v.AddConfigPath("/etc/ordercast")
	v.AddConfigPath(".")

	v.SetEnvPrefix("ORDERCAST")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	watch := true
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
		// no catalog file: serve the built-in menu, nothing to watch
		watch = false
	}

	catalog := DefaultCatalog()
	if watch {
		var loaded []CatalogProduct
		if err := v.UnmarshalKey("catalog.products", &loaded); err != nil {
			return nil, err
		}
		if err := validateCatalog(loaded); err != nil {
			return nil, err
		}
		catalog = loaded
	}

	holder := &CatalogHolder{}
	holder.current.Store(catalog)

	if watch {
		v.WatchConfig()
		v.OnConfigChange(func(e fsnotify.Event) {
			var updated []CatalogProduct
			if err := v.UnmarshalKey("catalog.products", &updated); err != nil {
				log.Printf("[catalog-config] reload failed: %v", err)
				return
			}
			if err := validateCatalog(updated); err != nil {
				log.Printf("[catalog-config] invalid config ignored: %v", err)
				return
			}
			holder.current.Store(updated)
			holder.notify(updated)
			log.Printf("[catalog-config] reloaded from %s", e.Name)
		})
	}

	return holder, nil
}

func (h *CatalogHolder) Get() []CatalogProduct {
	return h.current.Load().([]CatalogProduct)
}

// OnReload registers fn to run after every successful catalog reload.
func (h *CatalogHolder) OnReload(fn func([]CatalogProduct)) {
	if fn == nil {
		return
	}
	h.mu.Lock()
	h.onReload = append(h.onReload, fn)
	h.mu.Unlock()
}

func (h *CatalogHolder) notify(catalog []CatalogProduct) {
	h.mu.Lock()
	fns := append(([]func([]CatalogProduct))(nil), h.onReload...)
	h.mu.Unlock()
	for _, fn := range fns {
		fn(catalog)
	}
}

func validateCatalog(catalog []CatalogProduct) error {
	if len(catalog) == 0 {
		return errors.New("catalog.products cannot be empty")
	}
	seen := make(map[int64]struct{}, len(catalog))
	for _, p := range catalog {
		if p.ID <= 0 {
			return errors.New("catalog product id must be positive")
		}
		if strings.TrimSpace(p.Name) == "" {
			return errors.New("catalog product name cannot be empty")
		}
		if p.Price < 0 {
			return errors.New("catalog product price cannot be negative")
		}
		if _, dup := seen[p.ID]; dup {
			return errors.New("catalog product ids must be unique")
		}
		seen[p.ID] = struct{}{}
	}
	return nil
}
