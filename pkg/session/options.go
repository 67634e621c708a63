package session

// Option customises a Manager built by New or NewFromConfig.
type Option func(*Manager)

// WithStore replaces the default in-memory store, e.g. with a RedisStore.
func WithStore(store Store) Option {
	return func(m *Manager) { m.store = store }
}

// WithTransport overrides the transport derived from Config.
func WithTransport(transport Transport) Option {
	return func(m *Manager) { m.transport = transport }
}

// WithConfig replaces the whole Config. Later options still apply on top.
func WithConfig(config Config) Option {
	return func(m *Manager) { m.config = config }
}

// WithCookieName renames the cookie used by the default transport.
func WithCookieName(name string) Option {
	return func(m *Manager) { m.config.CookieName = name }
}
