package pages

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/Anubrata-Das/bluebella-e2e/internal/browser"
	"github.com/Anubrata-Das/bluebella-e2e/internal/browser/browsertest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTile builds a product grid tile with a title node and a link.
func newTile(title string) *browsertest.Element {
	tile := browsertest.NewElement("")
	tile.Children = map[string]*browsertest.Element{
		productTitle.Selector:  browsertest.NewElement(title),
		productAnchor.Selector: browsertest.NewElement(title + " link"),
	}
	return tile
}

// gridSim fakes a lazily loading collection page: tile batches appear once
// the scroll position crosses their threshold, and the page height grows
// with every loaded batch.
type gridSim struct {
	driver      *browsertest.Driver
	batches     [][]*browsertest.Element
	loadAt      []int
	batchHeight int
	scrollY     int
	loaded      int
}

func newGridSim(batchTitles [][]string, loadAt []int, batchHeight int) *gridSim {
	sim := &gridSim{loadAt: loadAt, batchHeight: batchHeight, loaded: 1}
	for _, titles := range batchTitles {
		batch := make([]*browsertest.Element, 0, len(titles))
		for _, title := range titles {
			batch = append(batch, newTile(title))
		}
		sim.batches = append(sim.batches, batch)
	}
	sim.driver = &browsertest.Driver{
		FindFunc:     sim.find,
		EvaluateFunc: sim.evaluate,
	}
	return sim
}

func (s *gridSim) height() int {
	return s.loaded * s.batchHeight
}

func (s *gridSim) find(loc browser.Locator) ([]browser.Element, error) {
	if loc.Selector != productGridItems.Selector {
		return nil, nil
	}
	var tiles []browser.Element
	for _, batch := range s.batches[:s.loaded] {
		for _, tile := range batch {
			tiles = append(tiles, tile)
		}
	}
	return tiles, nil
}

func (s *gridSim) evaluate(script string) (interface{}, error) {
	switch script {
	case "document.body.scrollHeight":
		return float64(s.height()), nil
	case "window.pageYOffset || window.scrollY || 0":
		return float64(s.scrollY), nil
	}
	var y int
	if _, err := fmt.Sscanf(script, "window.scrollTo(0, %d);", &y); err == nil {
		if y > s.height() {
			y = s.height()
		}
		s.scrollY = y
		for i, threshold := range s.loadAt {
			if s.scrollY >= threshold && i+1 > s.loaded {
				s.loaded = i + 1
			}
		}
		return nil, nil
	}
	return nil, nil
}

// downScrolls counts scroll steps to a non-zero offset.
func (s *gridSim) downScrolls() int {
	n := 0
	for _, script := range s.driver.Scripts {
		if strings.HasPrefix(script, "window.scrollTo(0, ") && script != "window.scrollTo(0, 0);" {
			n++
		}
	}
	return n
}

func (s *gridSim) didFinalRecheck() bool {
	for _, script := range s.driver.Scripts {
		if script == "window.scrollTo(0, 0);" {
			return true
		}
	}
	return false
}

func TestFindProductByNameInLaterBatch(t *testing.T) {
	sim := newGridSim([][]string{
		{"Silk Robe", "Mesh Bodysuit"},
		{"Lace Bra", "Satin Slip"},
	}, []int{0, 400}, 1000)
	page := NewCollectionPage(sim.driver, testConfig())

	found, err := page.FindProductByName("Lace Bra")
	require.NoError(t, err)
	assert.Same(t, sim.batches[1][0], found.(*browsertest.Element))

	// The match is brought into the viewport, and a found product never
	// triggers the final top-rescan.
	assert.Positive(t, sim.batches[1][0].Scrolled)
	assert.False(t, sim.didFinalRecheck())
	assert.LessOrEqual(t, sim.downScrolls(), testConfig().MaxScrollAttempts)
}

func TestFindProductByNameFoundWithoutScrolling(t *testing.T) {
	sim := newGridSim([][]string{{"Lace Bra"}}, []int{0}, 1000)
	page := NewCollectionPage(sim.driver, testConfig())

	found, err := page.FindProductByName("Lace Bra")
	require.NoError(t, err)
	assert.Same(t, sim.batches[0][0], found.(*browsertest.Element))
	assert.Zero(t, sim.downScrolls())
}

func TestFindProductByNameAbsentTerminatesAtBottom(t *testing.T) {
	sim := newGridSim([][]string{
		{"Silk Robe"},
		{"Satin Slip"},
	}, []int{0, 400}, 1000)
	page := NewCollectionPage(sim.driver, testConfig())

	_, err := page.FindProductByName("Velvet Corset")

	var notFound *ProductNotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, "Velvet Corset", notFound.Name)

	// Exhaustion ends with exactly one rescan from the top.
	assert.True(t, sim.didFinalRecheck())
	assert.LessOrEqual(t, sim.downScrolls(), testConfig().MaxScrollAttempts)
}

func TestFindProductByNameStopsAtScrollCap(t *testing.T) {
	// A page so tall the bottom-proximity check never triggers.
	sim := newGridSim([][]string{{"Silk Robe"}}, []int{0}, 100000)
	page := NewCollectionPage(sim.driver, testConfig())

	_, err := page.FindProductByName("Velvet Corset")

	var notFound *ProductNotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, testConfig().MaxScrollAttempts, sim.downScrolls())
	assert.True(t, sim.didFinalRecheck())
}

func TestFindProductByNameSkipsUnreadableTiles(t *testing.T) {
	sim := newGridSim([][]string{{"Silk Robe", "Mesh Bodysuit", "Lace Bra"}}, []int{0}, 1000)
	// First tile's title went stale, second tile has no title node at all.
	sim.batches[0][0].Children[productTitle.Selector].TextErr = errors.New("stale element reference")
	sim.batches[0][1].Children = nil
	page := NewCollectionPage(sim.driver, testConfig())

	found, err := page.FindProductByName("Lace Bra")
	require.NoError(t, err)
	assert.Same(t, sim.batches[0][2], found.(*browsertest.Element))
}

func TestFindProductByNameFirstMatchWins(t *testing.T) {
	sim := newGridSim([][]string{{"Lace Bra", "Lace Bra"}}, []int{0}, 1000)
	page := NewCollectionPage(sim.driver, testConfig())

	found, err := page.FindProductByName("Lace Bra")
	require.NoError(t, err)
	assert.Same(t, sim.batches[0][0], found.(*browsertest.Element))
}

func TestFindProductByNameTrimsTitleWhitespace(t *testing.T) {
	sim := newGridSim([][]string{{"  Lace Bra \n"}}, []int{0}, 1000)
	page := NewCollectionPage(sim.driver, testConfig())

	_, err := page.FindProductByName("Lace Bra")
	require.NoError(t, err)
}

func TestFindAndClickProductRetriesStaleClickOnce(t *testing.T) {
	staleTile := newTile("Lace Bra")
	staleTile.Children[productAnchor.Selector].ClickErr = errors.New("element is not attached to the DOM")
	freshTile := newTile("Lace Bra")

	queries := 0
	driver := &browsertest.Driver{
		FindFunc: func(loc browser.Locator) ([]browser.Element, error) {
			if loc.Selector != productGridItems.Selector {
				return nil, nil
			}
			queries++
			if queries == 1 {
				return []browser.Element{staleTile}, nil
			}
			return []browser.Element{freshTile}, nil
		},
		EvaluateFunc: func(script string) (interface{}, error) {
			return float64(1000), nil
		},
	}
	page := NewCollectionPage(driver, testConfig())

	err := page.FindAndClickProduct("Lace Bra")
	require.NoError(t, err)
	assert.Equal(t, 1, staleTile.Children[productAnchor.Selector].Clicks)
	assert.Equal(t, 1, freshTile.Children[productAnchor.Selector].Clicks)
}

func TestFindAndClickProductDoesNotRetryNotFound(t *testing.T) {
	sim := newGridSim([][]string{{"Silk Robe"}}, []int{0}, 1000)
	page := NewCollectionPage(sim.driver, testConfig())

	err := page.FindAndClickProduct("Velvet Corset")
	var notFound *ProductNotFoundError
	require.ErrorAs(t, err, &notFound)
	// A not-found product must be searched exactly once, not twice.
	assert.Equal(t, 1, strings.Count(strings.Join(sim.driver.Scripts, "\n"), "window.scrollTo(0, 0);"))
}

func TestSortByClicksOptionAndWaitsForGrid(t *testing.T) {
	sortButton := browsertest.NewElement("Sort by")
	optionButton := browsertest.NewElement("Newest")
	option := fmt.Sprintf(
		"(//div[contains(@class,'collection-filter__sorting')]//button[contains(normalize-space(.),'%s')])[1]",
		"Newest",
	)
	driver := &browsertest.Driver{
		FindFunc: finderFor(map[string][]browser.Element{
			sortByButton.Selector:     {sortButton},
			sortingButtons.Selector:   {optionButton},
			option:                    {optionButton},
			productGridItems.Selector: {newTile("Lace Bra")},
		}),
	}
	page := NewCollectionPage(driver, testConfig())

	require.NoError(t, page.SortBy("Newest"))
	assert.Equal(t, 1, sortButton.Clicks)
	assert.Positive(t, optionButton.Clicks)
}
