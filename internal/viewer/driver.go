package viewer

import "context"

// desktopDriver satisfies session.Driver for the windowed build, where there
// is no runtime to negotiate with and presence is immediate.
type desktopDriver struct{}

func (desktopDriver) RequestSession(ctx context.Context) error { return nil }
func (desktopDriver) EndSession(ctx context.Context) error     { return nil }
