package snapshot

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/conneroisu/hop/internal/routes"
)

func testGroups() []routes.Group {
	return []routes.Group{
		{
			Name: "search",
			Routes: map[string]routes.Route{
				"g":  {Kind: routes.KindExternal, Path: "https://google.com/search?q={{query}}"},
				"gh": {Kind: routes.KindExternal, Path: "https://github.com/search?q={{query}}"},
			},
		},
	}
}

func TestNew_DerivesIndexFromGroups(t *testing.T) {
	snap := New("example.com", "g", testGroups())

	require.Len(t, snap.Routes, 2)
	assert.Equal(t, routes.Flatten(snap.Groups), snap.Routes)
	assert.Equal(t, "example.com", snap.PublicAddress)
	assert.Equal(t, "g", snap.DefaultRoute)
}

func TestNew_EmptyGroups(t *testing.T) {
	snap := New("example.com", "", nil)
	assert.Empty(t, snap.Routes)
}

func TestStore_PublishAndCurrent(t *testing.T) {
	s1 := New("one.example", "", nil)
	s2 := New("two.example", "", nil)

	store := NewStore(s1)
	assert.Same(t, s1, store.Current())

	store.Publish(s2)
	assert.Same(t, s2, store.Current())
}

func TestStore_OldSnapshotStaysValid(t *testing.T) {
	s1 := New("one.example", "g", testGroups())
	store := NewStore(s1)

	held := store.Current()
	store.Publish(New("two.example", "", nil))

	// The reader that grabbed s1 before the publish still sees a fully
	// consistent s1.
	assert.Equal(t, "one.example", held.PublicAddress)
	assert.Len(t, held.Routes, 2)
	assert.Equal(t, "g", held.DefaultRoute)
}

func TestStore_ConcurrentReadersAndPublisher(t *testing.T) {
	snaps := []*Snapshot{
		New("zero.example", "", testGroups()),
		New("one.example", "g", testGroups()),
		New("two.example", "gh", testGroups()),
	}
	store := NewStore(snaps[0])

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		for i := 0; i < 1000; i++ {
			store.Publish(snaps[i%len(snaps)])
		}
	}()

	for r := 0; r < 8; r++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 1000; i++ {
				snap := store.Current()
				if !assert.NotNil(t, snap) {
					return
				}
				// Every observed snapshot must be internally
				// consistent: index matches its own groups.
				assert.Equal(t, routes.Flatten(snap.Groups), snap.Routes)
			}
		}()
	}

	wg.Wait()

	// After the last publish completes, new readers see the final value.
	assert.Same(t, snaps[999%len(snaps)], store.Current())
}
