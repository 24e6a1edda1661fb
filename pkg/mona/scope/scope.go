package scope

// Resource is the scoped-resource protocol: Enter acquires the resource
// and yields the value it guards, Exit releases it. Exit must be safe to
// call exactly once per successful Enter.
type Resource[U any] interface {
	// Enter acquires the resource and returns the guarded value.
	Enter() U
	// Exit releases the resource.
	Exit()
}

// Func adapts a pair of closures into a Resource.
type Func[U any] struct {
	OnEnter func() U
	OnExit  func()
}

func (f Func[U]) Enter() U {
	if f.OnEnter == nil {
		var zero U
		return zero
	}
	return f.OnEnter()
}

func (f Func[U]) Exit() {
	if f.OnExit != nil {
		f.OnExit()
	}
}
