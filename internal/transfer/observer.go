package transfer

// Observer is notified after a coordinator changes state.
type Observer interface {
	OnTransfer(kind Kind)
	OnFilterChange(text string)
}

// TransferFunc adapts a function to [Observer], ignoring filter changes.
type TransferFunc func(kind Kind)

func (f TransferFunc) OnTransfer(kind Kind)  { f(kind) }
func (f TransferFunc) OnFilterChange(string) {}

type noopObserver struct{}

func (noopObserver) OnTransfer(Kind)       {}
func (noopObserver) OnFilterChange(string) {}

// Recorder is an [Observer] that keeps every notification in order.
type Recorder struct {
	Transfers []Kind
	Filters   []string
}

func (r *Recorder) OnTransfer(kind Kind)       { r.Transfers = append(r.Transfers, kind) }
func (r *Recorder) OnFilterChange(text string) { r.Filters = append(r.Filters, text) }

// Last returns the most recent transfer kind.
func (r *Recorder) Last() (Kind, bool) {
	if len(r.Transfers) == 0 {
		return 0, false
	}
	return r.Transfers[len(r.Transfers)-1], true
}

// Multi fans notifications out to every observer in order. Nil entries are skipped.
func Multi(observers ...Observer) Observer {
	var live []Observer
	for _, o := range observers {
		if o != nil {
			live = append(live, o)
		}
	}
	return multi(live)
}

type multi []Observer

func (m multi) OnTransfer(kind Kind) {
	for _, o := range m {
		o.OnTransfer(kind)
	}
}

func (m multi) OnFilterChange(text string) {
	for _, o := range m {
		o.OnFilterChange(text)
	}
}
