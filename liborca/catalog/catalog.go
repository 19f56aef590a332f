package catalog

import (
	"runtime"
	"sync"

	"github.com/2x3systems/orca/orca"
	"github.com/dgraph-io/badger/v3"
	"github.com/gogo/protobuf/proto"
	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/pkg/errors"
	"github.com/plan-systems/klog"
)

/***

Catalog database format:

	gCatalogStateKey => CatalogState

	kEntryPrefix, GraphletSize, GraphDigest (uint64, big-endian) => SignatureEntry
	...

A signature matrix is a pure function of (graph, graphlet size), so an entry never changes once written.

***/

var (
	gCatalogStateKey = []byte{0x00, 0x00, 0x01}
)

const (
	kMajorVers        = 2024
	kMinorVers        = 1
	kDefaultCacheSize = 64
)

// cachedEntry is a decoded SignatureEntry.  M is owned by the cache and never handed out directly.
type cachedEntry struct {
	numEdges int
	M        *orca.SignatureMatrix
}

// catalog is a db wrapper for a signature matrix catalog
type catalog struct {
	mu         sync.Mutex
	readOnly   bool
	stateDirty bool
	state      CatalogState
	db         *badger.DB
	cache      *lru.Cache[entryKey, cachedEntry]
}

// OpenCatalog opens a new or existing signature catalog.  An empty opts.DbPathName opens an in-memory catalog.
func OpenCatalog(opts orca.CatalogOpts) (orca.Catalog, error) {
	if opts.CacheSize <= 0 {
		opts.CacheSize = kDefaultCacheSize
	}

	cat := &catalog{
		readOnly: opts.ReadOnly,
	}

	dbOpts := badger.DefaultOptions(opts.DbPathName)
	dbOpts.ReadOnly = opts.ReadOnly
	dbOpts.DetectConflicts = false // entries are write-once
	dbOpts.Logger = nil
	dbOpts.MetricsEnabled = false

	// Badger for windows currently does not support read-only mode
	if runtime.GOOS == "windows" {
		dbOpts.ReadOnly = false
	}

	if len(opts.DbPathName) == 0 {
		if opts.ReadOnly {
			return nil, errors.Wrap(orca.ErrBadCatalogParam, "DbPathName must be specified for read-only catalog")
		}
		dbOpts.InMemory = true
	}

	var err error
	cat.cache, err = lru.New[entryKey, cachedEntry](opts.CacheSize)
	if err != nil {
		return nil, err
	}

	cat.db, err = badger.Open(dbOpts)
	if err != nil {
		return nil, errors.Wrapf(err, "opening catalog %q", opts.DbPathName)
	}

	err = cat.loadState()
	if err == badger.ErrKeyNotFound {
		err = nil
		cat.stateDirty = !cat.readOnly
		cat.state.MajorVers = kMajorVers
		cat.state.MinorVers = kMinorVers
		cat.state.NumEntries = make([]uint64, orca.Graphlets5+1)
	}

	if n := int(orca.Graphlets5) + 1; len(cat.state.NumEntries) < n {
		cat.state.NumEntries = append(cat.state.NumEntries, make([]uint64, n-len(cat.state.NumEntries))...)
	}

	if err == nil && (cat.state.MajorVers != kMajorVers || cat.state.MinorVers != kMinorVers) {
		err = errors.Errorf("catalog version %d.%d is incompatible", cat.state.MajorVers, cat.state.MinorVers)
	}

	if err != nil {
		cat.Close()
		return nil, err
	}

	klog.V(2).Infof("catalog %q opened: %d 4-node entries, %d 5-node entries", opts.DbPathName, cat.numEntries(orca.Graphlets4), cat.numEntries(orca.Graphlets5))
	return cat, nil
}

func (cat *catalog) IsReadOnly() bool {
	return cat.readOnly
}

func (cat *catalog) NumEntries(size orca.GraphletSize) int64 {
	cat.mu.Lock()
	defer cat.mu.Unlock()
	return cat.numEntries(size)
}

func (cat *catalog) numEntries(size orca.GraphletSize) int64 {
	if size < 0 || int(size) >= len(cat.state.NumEntries) {
		return 0
	}
	return int64(cat.state.NumEntries[size])
}

func (cat *catalog) Get(G orca.Graph, size orca.GraphletSize) (*orca.SignatureMatrix, bool, error) {
	if err := size.Validate(); err != nil {
		return nil, false, err
	}

	cat.mu.Lock()
	defer cat.mu.Unlock()

	if cat.db == nil {
		return nil, false, orca.ErrCatalogClosed
	}

	key := formEntryKey(size, orca.GraphDigest(G))
	if hit, ok := cat.cache.Get(key); ok {
		if !sameShape(G, hit.M.NumNodes(), hit.numEdges) {
			return nil, false, nil
		}
		return hit.M.Clone(), true, nil
	}

	var entry SignatureEntry
	err := cat.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(key[:])
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			return proto.Unmarshal(val, &entry)
		})
	})
	if err == badger.ErrKeyNotFound {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, errors.Wrap(err, "reading catalog entry")
	}

	if !sameShape(G, int(entry.NumNodes), int(entry.NumEdges)) {
		return nil, false, nil
	}

	M, err := entry.Matrix()
	if err != nil {
		return nil, false, err
	}
	cat.cache.Add(key, cachedEntry{numEdges: int(entry.NumEdges), M: M})
	return M.Clone(), true, nil
}

// sameShape guards against a different graph behind the same digest.
func sameShape(G orca.Graph, numNodes, numEdges int) bool {
	if numNodes != G.NumNodes() || numEdges != G.NumEdges() {
		klog.Warningf("catalog digest collision for graph with %d nodes, %d edges", G.NumNodes(), G.NumEdges())
		return false
	}
	return true
}

func (cat *catalog) Put(G orca.Graph, M *orca.SignatureMatrix) (bool, error) {
	if M.NumNodes() != G.NumNodes() {
		return false, errors.Wrapf(orca.ErrBadMatrix, "matrix has %d rows for a graph of %d nodes", M.NumNodes(), G.NumNodes())
	}

	cat.mu.Lock()
	defer cat.mu.Unlock()

	if cat.db == nil {
		return false, orca.ErrCatalogClosed
	}
	if cat.readOnly {
		return false, orca.ErrCatalogReadOnly
	}

	key := formEntryKey(M.Size(), orca.GraphDigest(G))
	entry := SignatureEntry{
		Size:     int32(M.Size()),
		NumNodes: int32(M.NumNodes()),
		NumEdges: int32(G.NumEdges()),
		Counts:   M.Counts(),
	}

	added := false
	err := cat.db.Update(func(txn *badger.Txn) error {
		_, err := txn.Get(key[:])
		if err == nil {
			return nil // already present
		}
		if err != badger.ErrKeyNotFound {
			return err
		}

		buf, err := proto.Marshal(&entry)
		if err != nil {
			return err
		}
		if err = txn.Set(key[:], buf); err != nil {
			return err
		}
		added = true
		return nil
	})
	if err != nil {
		return false, errors.Wrap(err, "writing catalog entry")
	}

	if added {
		cat.state.NumEntries[M.Size()]++
		cat.stateDirty = true
		cat.cache.Add(key, cachedEntry{numEdges: G.NumEdges(), M: M.Clone()})
	}
	return added, nil
}

func (cat *catalog) loadState() error {
	err := cat.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(gCatalogStateKey)
		if err == nil {
			err = item.Value(func(val []byte) error {
				return proto.Unmarshal(val, &cat.state)
			})
		}
		return err
	})
	return err
}

func (cat *catalog) flushState() error {
	if !cat.stateDirty || cat.db == nil {
		return nil
	}
	err := cat.db.Update(func(txn *badger.Txn) error {
		stateBuf, err := proto.Marshal(&cat.state)
		if err != nil {
			return err
		}
		return txn.Set(gCatalogStateKey, stateBuf)
	})
	if err != nil {
		return errors.Wrap(err, "flushing catalog state")
	}
	cat.stateDirty = false
	return nil
}

func (cat *catalog) Close() error {
	cat.mu.Lock()
	defer cat.mu.Unlock()

	err := cat.flushState()
	if cat.db != nil {
		if closeErr := cat.db.Close(); err == nil {
			err = closeErr
		}
		cat.db = nil
		cat.cache.Purge()
	}
	return err
}
