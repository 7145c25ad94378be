package gexiv2

import "golang.org/x/exp/maps"

// RegisterXMPNamespace makes prefix usable in Xmp.<prefix>.<name> keys for the
// namespace URI name. It reports false when prefix is already bound.
func RegisterXMPNamespace(name, prefix string) (bool, error) {
	return std.registerXMPNamespace(name, prefix)
}

// UnregisterXMPNamespace removes a namespace added by RegisterXMPNamespace
// and reports whether one was removed.
func UnregisterXMPNamespace(name string) (bool, error) {
	return std.unregisterXMPNamespace(name)
}

// UnregisterAllXMPNamespaces removes every namespace added through
// RegisterXMPNamespace. Built-in namespaces are kept.
func UnregisterAllXMPNamespaces() error {
	return std.unregisterAllXMPNamespaces()
}

// XMPNamespaceForTag returns the namespace URI bound to the prefix of an XMP
// key ("Xmp.dc.title") or to a bare prefix ("dc").
func XMPNamespaceForTag(tag string) (string, error) {
	return std.xmpNamespaceForTag(tag)
}

// RegisteredXMPNamespaces returns a copy of the namespaces registered through
// this package, keyed by URI.
func RegisteredXMPNamespaces() map[string]string {
	return std.registeredXMPNamespaces()
}

func (l *library) registeredXMPNamespaces() map[string]string {
	l.nsMu.Lock()
	defer l.nsMu.Unlock()
	return maps.Clone(l.ns)
}

func (l *library) registerXMPNamespace(name, prefix string) (bool, error) {
	const op = "register-xmp-namespace"
	if err := l.ensure(); err != nil {
		return false, err
	}
	l.nsMu.Lock()
	defer l.nsMu.Unlock()
	ok, err := l.drv.RegisterXMPNamespace(name, prefix)
	if err != nil {
		return false, l.fail(l.log, op, "", err)
	}
	if ok {
		l.ns[name] = prefix
	}
	return ok, nil
}

func (l *library) unregisterXMPNamespace(name string) (bool, error) {
	const op = "unregister-xmp-namespace"
	if err := l.ensure(); err != nil {
		return false, err
	}
	l.nsMu.Lock()
	defer l.nsMu.Unlock()
	ok, err := l.drv.UnregisterXMPNamespace(name)
	if err != nil {
		return false, l.fail(l.log, op, "", err)
	}
	delete(l.ns, name)
	return ok, nil
}

func (l *library) unregisterAllXMPNamespaces() error {
	const op = "unregister-all-xmp-namespaces"
	if err := l.ensure(); err != nil {
		return err
	}
	l.nsMu.Lock()
	defer l.nsMu.Unlock()
	if err := l.drv.UnregisterAllXMPNamespaces(); err != nil {
		return l.fail(l.log, op, "", err)
	}
	clear(l.ns)
	return nil
}

func (l *library) xmpNamespaceForTag(tag string) (string, error) {
	if err := l.ensure(); err != nil {
		return "", err
	}
	uri, err := l.drv.XMPNamespaceForTag(tag)
	if err != nil {
		e := l.fail(l.log, "xmp-namespace-for-tag", "", err)
		e.Tag = tag
		return "", e
	}
	return uri, nil
}
