package synced

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/guiguan/caster"
	"github.com/npillmayer/rectsum"
)

// ErrClosed is flagged when subscribing to a grid which has been closed.
const ErrClosed = rectsum.TreeError("grid has been closed")

// Change describes a committed update.
type Change[V rectsum.Scalar] struct {
	Seq   uint64       // 1 for the first update of a grid, increasing by 1
	Rect  rectsum.Rect // cells the value has been added to
	Value V            // value added to every cell of Rect
}

// Grid guards a rectsum.Tree with a read/write lock and publishes changes.
type Grid[V rectsum.Scalar] struct {
	mu     sync.RWMutex // guards tree and seq
	pubmu  sync.Mutex   // keeps publications in commit order
	tree   *rectsum.Tree[V]
	seq    uint64
	cast   *caster.Caster // broadcaster for committed changes
	closed atomic.Bool
}

// New creates a grid with all cells set to zero.
func New[V rectsum.Scalar](cfg rectsum.Config) (*Grid[V], error) {
	tree, err := rectsum.New[V](cfg)
	if err != nil {
		return nil, err
	}
	return Wrap(tree), nil
}

// Wrap creates a grid for an existing tree. The caller must not access tree
// directly afterwards.
func Wrap[V rectsum.Scalar](tree *rectsum.Tree[V]) *Grid[V] {
	return &Grid[V]{
		tree: tree,
		cast: caster.New(nil),
	}
}

// Rows returns the number of rows of the grid.
func (g *Grid[V]) Rows() int {
	return g.tree.Rows() // immutable after construction
}

// Cols returns the number of columns of the grid.
func (g *Grid[V]) Cols() int {
	return g.tree.Cols()
}

// Update adds v to every cell in rows xlo…xhi and columns ylo…yhi.
func (g *Grid[V]) Update(xlo, xhi, ylo, yhi int, v V) error {
	return g.UpdateRect(rectsum.R(xlo, xhi, ylo, yhi), v)
}

// UpdateRect adds v to every cell in r and publishes the change to all
// subscribers. Rejected updates are not published.
func (g *Grid[V]) UpdateRect(r rectsum.Rect, v V) error {
	g.mu.Lock()
	if err := g.tree.UpdateRect(r, v); err != nil {
		g.mu.Unlock()
		return err
	}
	g.seq++
	c := Change[V]{Seq: g.seq, Rect: r, Value: v}
	g.pubmu.Lock() // acquire before releasing mu to keep commit order
	g.mu.Unlock()
	defer g.pubmu.Unlock()
	if !g.cast.Pub(c) {
		T().Debugf("synced: change #%d not published, grid closed", c.Seq)
	}
	return nil
}

// Query returns the sum of all cells in rows xlo…xhi and columns ylo…yhi.
func (g *Grid[V]) Query(xlo, xhi, ylo, yhi int) (V, error) {
	return g.QueryRect(rectsum.R(xlo, xhi, ylo, yhi))
}

// QueryRect returns the sum of all cells in r.
func (g *Grid[V]) QueryRect(r rectsum.Rect) (V, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.tree.QueryRect(r)
}

// Total returns the sum of all cells of the grid.
func (g *Grid[V]) Total() V {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.tree.Total()
}

// Seq returns the sequence number of the last committed update.
func (g *Grid[V]) Seq() uint64 {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.seq
}

// Check validates the underlying tree, see rectsum.Tree.Check.
func (g *Grid[V]) Check() error {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.tree.Check()
}

// Subscribe returns a channel receiving all changes committed from now on.
// The subscription ends when ctx is done or the grid is closed; the channel
// is closed then. capacity is the buffer size of the channel.
//
// A subscriber which stops reading must cancel ctx. Otherwise publication
// blocks, and with it every subsequent update of the grid.
// Subscribing to a closed grid returns ErrClosed.
func (g *Grid[V]) Subscribe(ctx context.Context, capacity uint) (<-chan Change[V], error) {
	if g.closed.Load() {
		return nil, ErrClosed
	}
	if ctx == nil {
		ctx = context.Background()
	}
	sub, _ := g.cast.Sub(ctx, capacity) // a closed caster hands out a closed channel
	if g.closed.Load() {
		return nil, ErrClosed
	}
	out := make(chan Change[V], capacity)
	go func() {
		defer close(out)
		for {
			select {
			case msg, ok := <-sub:
				if !ok {
					return
				}
				c, ok := msg.(Change[V])
				if !ok {
					T().Errorf("synced: unexpected message of type %T", msg)
					continue
				}
				select {
				case out <- c:
				case <-ctx.Done():
					go drain(sub)
					return
				}
			case <-ctx.Done():
				go drain(sub)
				return
			}
		}
	}()
	return out, nil
}

// drain empties a cancelled subscription. The caster drops it with the next
// publication or on close, which ends the loop.
func drain(sub <-chan interface{}) {
	for range sub {
	}
}

// Close stops publishing changes and ends all subscriptions. The grid may
// still be updated and queried afterwards.
func (g *Grid[V]) Close() {
	if g.closed.CompareAndSwap(false, true) {
		g.cast.Close()
	}
}
