package phoneinput

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"sync"

	"github.com/nyaruka/phonenumbers"
	"golang.org/x/sync/singleflight"
	"golang.org/x/text/language"
	"golang.org/x/text/language/display"
)

// MetadataDirectory is a CountryDirectory built from the libphonenumber
// region metadata, with English country names.
type MetadataDirectory struct {
	loadOnce  sync.Once
	countries []Country
	byCode    map[string]Country

	group singleflight.Group
	mu    sync.RWMutex
	codes map[string]string
}

var defaultDirectory = sync.OnceValue(func() *MetadataDirectory {
	return NewMetadataDirectory()
})

// DefaultDirectory returns the shared metadata-backed directory.
func DefaultDirectory() CountryDirectory {
	return defaultDirectory()
}

// NewMetadataDirectory creates a directory. Metadata is loaded lazily.
func NewMetadataDirectory() *MetadataDirectory {
	return &MetadataDirectory{codes: make(map[string]string)}
}

func (d *MetadataDirectory) load() {
	d.loadOnce.Do(func() {
		names := display.English.Regions()
		d.byCode = make(map[string]Country)
		for region := range phonenumbers.GetSupportedRegions() {
			if len(region) != 2 {
				continue
			}
			cc := phonenumbers.GetCountryCodeForRegion(region)
			if cc == 0 {
				continue
			}
			name := region
			if r, err := language.ParseRegion(region); err == nil {
				if n := names.Name(r); n != "" {
					name = n
				}
			}
			c := Country{
				Code:         region,
				Name:         name,
				CallingCodes: []string{strconv.Itoa(cc)},
			}
			d.countries = append(d.countries, c)
			d.byCode[region] = c
		}
		sort.Slice(d.countries, func(i, j int) bool {
			if d.countries[i].Name == d.countries[j].Name {
				return d.countries[i].Code < d.countries[j].Code
			}
			return d.countries[i].Name < d.countries[j].Name
		})
	})
}

// Countries returns all supported regions sorted by name.
func (d *MetadataDirectory) Countries() []Country {
	d.load()
	out := make([]Country, len(d.countries))
	copy(out, d.countries)
	return out
}

// Lookup finds a country by code, case-insensitively.
func (d *MetadataDirectory) Lookup(code string) (Country, bool) {
	d.load()
	c, ok := d.byCode[normalizeCode(code)]
	return c, ok
}

// CallingCode resolves and caches the dial code for a country. Concurrent
// lookups of the same code share one resolution.
func (d *MetadataDirectory) CallingCode(ctx context.Context, code string) (string, error) {
	code = normalizeCode(code)
	if err := ctx.Err(); err != nil {
		return "", err
	}

	d.mu.RLock()
	cached, ok := d.codes[code]
	d.mu.RUnlock()
	if ok {
		return cached, nil
	}

	v, err, _ := d.group.Do(code, func() (any, error) {
		cc := phonenumbers.GetCountryCodeForRegion(code)
		if cc == 0 {
			return "", fmt.Errorf("calling code for %q: %w", code, ErrUnknownCountry)
		}
		resolved := strconv.Itoa(cc)
		d.mu.Lock()
		d.codes[code] = resolved
		d.mu.Unlock()
		return resolved, nil
	})
	if err != nil {
		return "", err
	}
	return v.(string), nil
}
