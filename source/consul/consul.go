package consul

import (
	"context"
	"path"
	"strings"
	"sync"
	"time"

	"github.com/hashicorp/consul/api"
	"github.com/mwantia/vls/data"
	"github.com/mwantia/vls/source"
)

// ConsulSource lists keys stored in HashiCorp Consul KV. Keys act as
// slash-separated paths; a key ending in "/" is treated as a
// directory. Consul keeps no timestamps or ownership, so those fields
// are synthesized from the source configuration.
//
// Limitations:
// - Consul KV has a 512KB limit per value
// - Best suited for configuration trees and small assets
type ConsulSource struct {
	mu     sync.RWMutex
	client *api.Client
	kv     *api.KV

	config *ConsulSourceConfig
}

// ConsulSourceConfig contains configuration options for the Consul source
type ConsulSourceConfig struct {
	// Address of the Consul server (default: "127.0.0.1:8500")
	Address string

	// Token for Consul ACL authentication (optional)
	Token string

	// Datacenter to use (optional)
	Datacenter string

	// Prefix applied to all keys (default: "")
	Prefix string

	// Ownership names reported for every entry (default: "consul")
	Owner string
	Group string
}

// NewConsul creates a Consul-backed listing source.
func NewConsul(config *ConsulSourceConfig) (*ConsulSource, error) {
	if config == nil {
		config = &ConsulSourceConfig{}
	}

	if config.Address == "" {
		config.Address = "127.0.0.1:8500"
	}
	if config.Owner == "" {
		config.Owner = "consul"
	}
	if config.Group == "" {
		config.Group = "consul"
	}

	clientConfig := api.DefaultConfig()
	clientConfig.Address = config.Address
	if config.Token != "" {
		clientConfig.Token = config.Token
	}
	if config.Datacenter != "" {
		clientConfig.Datacenter = config.Datacenter
	}

	client, err := api.NewClient(clientConfig)
	if err != nil {
		return nil, err
	}

	return &ConsulSource{
		client: client,
		kv:     client.KV(),
		config: config,
	}, nil
}

// Name returns the identifier name defined for this source
func (*ConsulSource) Name() string {
	return "consul"
}

// Open is part of the lifecycle behaviour - Consul handles connections.
func (cs *ConsulSource) Open(ctx context.Context) error {
	return nil
}

// Close is part of the lifecycle behaviour - the Consul client is stateless.
func (cs *ConsulSource) Close(ctx context.Context) error {
	return nil
}

// GetCapabilities returns the long-format fields this source can
// populate with real values.
func (cs *ConsulSource) GetCapabilities() *source.Capabilities {
	return &source.Capabilities{}
}

// Stat returns metadata for the entry at path.
func (cs *ConsulSource) Stat(ctx context.Context, target string) (*data.Entry, error) {
	cs.mu.RLock()
	defer cs.mu.RUnlock()

	key := cs.resolveKey(target)
	if key == "" {
		return cs.dirEntry("/"), nil
	}

	opts := (&api.QueryOptions{}).WithContext(ctx)

	pair, _, err := cs.kv.Get(key, opts)
	if err != nil {
		return nil, err
	}
	if pair != nil {
		return cs.fileEntry(key, pair), nil
	}

	// No exact value: the key may still exist as a pseudo-directory
	keys, _, err := cs.kv.Keys(key+"/", "/", opts)
	if err != nil {
		return nil, err
	}
	if len(keys) == 0 {
		return nil, data.ErrNotExist
	}

	return cs.dirEntry(path.Base(key)), nil
}

// List returns all entries in the directory at path. Listing a
// non-directory returns that entry as a singleton.
func (cs *ConsulSource) List(ctx context.Context, target string) ([]*data.Entry, error) {
	cs.mu.RLock()
	defer cs.mu.RUnlock()

	key := cs.resolveKey(target)
	opts := (&api.QueryOptions{}).WithContext(ctx)

	if key != "" {
		pair, _, err := cs.kv.Get(key, opts)
		if err != nil {
			return nil, err
		}
		if pair != nil {
			return []*data.Entry{cs.fileEntry(key, pair)}, nil
		}
	}

	prefix := key
	if prefix != "" {
		prefix += "/"
	}

	keys, _, err := cs.kv.Keys(prefix, "/", opts)
	if err != nil {
		return nil, err
	}
	if len(keys) == 0 && key != "" {
		return nil, data.ErrNotExist
	}

	entries := make([]*data.Entry, 0, len(keys))
	for _, child := range keys {
		rest := strings.TrimPrefix(child, prefix)
		if rest == "" {
			continue
		}
		if strings.HasSuffix(rest, "/") {
			entries = append(entries, cs.dirEntry(strings.TrimSuffix(rest, "/")))
			continue
		}

		pair, _, err := cs.kv.Get(child, opts)
		if err != nil {
			return nil, err
		}
		if pair != nil {
			entries = append(entries, cs.fileEntry(child, pair))
		}
	}

	return entries, nil
}

func (cs *ConsulSource) fileEntry(key string, pair *api.KVPair) *data.Entry {
	size := int64(len(pair.Value))
	return &data.Entry{
		Name:    path.Base(key),
		Path:    key,
		Mode:    data.TypeRegular | 0644,
		Nlink:   1,
		Owner:   cs.config.Owner,
		Group:   cs.config.Group,
		Size:    size,
		Blocks:  data.BlocksForSize(size),
		ModTime: time.Now(),
	}
}

func (cs *ConsulSource) dirEntry(name string) *data.Entry {
	entry := data.NewDirEntry(name, 0755)
	entry.Owner = cs.config.Owner
	entry.Group = cs.config.Group
	return entry
}

// resolveKey joins the configured prefix with a user-facing path.
func (cs *ConsulSource) resolveKey(target string) string {
	key := strings.TrimPrefix(path.Clean("/"+target), "/")
	if cs.config.Prefix != "" {
		key = path.Join(cs.config.Prefix, key)
	}
	return key
}
