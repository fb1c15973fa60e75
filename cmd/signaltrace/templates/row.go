package templates

//go:generate qtc -dir=.

// Row is one poll of one signal instance in a trace.
type Row struct {
	Scenario string
	Instance int
	Poll     int
	State    string
	Value    string
}

// Summary counts rows by poll state.
func Summary(rows []Row) (ready, pending, done int) {
	for _, r := range rows {
		switch r.State {
		case "ready":
			ready++
		case "pending":
			pending++
		case "done":
			done++
		}
	}
	return ready, pending, done
}
