package hal

type hostHAL struct {
	fb  *hostFramebuffer
	kbd *hostKeyboard
}

// New returns a host HAL with a width x height RGBA framebuffer.
func New(width, height int) HAL {
	return newHost(width, height)
}

func newHost(width, height int) *hostHAL {
	return &hostHAL{
		fb:  newHostFramebuffer(width, height),
		kbd: newHostKeyboard(),
	}
}

func (h *hostHAL) Display() Display { return hostDisplay{fb: h.fb} }
func (h *hostHAL) Input() Input     { return hostInput{kbd: h.kbd} }

type hostDisplay struct {
	fb *hostFramebuffer
}

func (d hostDisplay) Framebuffer() Framebuffer { return d.fb }

type hostInput struct {
	kbd *hostKeyboard
}

func (in hostInput) Keyboard() Keyboard { return in.kbd }
