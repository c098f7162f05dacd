package engine

import "fmt"

// recorder appends every callback it receives to a shared log.
type recorder struct {
	BaseComponent
	id  string
	log *[]string
}

func newRecorder(id string, log *[]string) *recorder {
	return &recorder{id: id, log: log}
}

func (r *recorder) note(event string) {
	*r.log = append(*r.log, fmt.Sprintf("%s.%s", r.id, event))
}

func (r *recorder) Awake() { r.note("Awake") }
func (r *recorder) Start() { r.note("Start") }
func (r *recorder) OnEnable() { r.note("OnEnable") }
func (r *recorder) OnDisable() { r.note("OnDisable") }
func (r *recorder) OnDestroy() { r.note("OnDestroy") }
func (r *recorder) Update(ctx *Context) { r.note("Update") }
func (r *recorder) LateUpdate(*Context) { r.note("LateUpdate") }
func (r *recorder) FixedUpdate(*Context) { r.note("FixedUpdate") }

// plain has no capabilities beyond the base.
type plain struct {
	BaseComponent
}

func count(log []string, entry string) int {
	n := 0
	for _, e := range log {
		if e == entry {
			n++
		}
	}
	return n
}
