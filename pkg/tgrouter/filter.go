package tgrouter

import "slices"

// Filter decides whether a route takes the update.
type Filter func(*Ctx) bool

func Message() Filter {
	return func(c *Ctx) bool {
		return c.update.Message != nil
	}
}

func Command() Filter {
	return func(c *Ctx) bool {
		return c.update.Message != nil && c.update.Message.IsCommand()
	}
}

// Cmd matches any of the given bot commands, without the leading slash.
func Cmd(names ...string) Filter {
	return func(c *Ctx) bool {
		if c.update.Message == nil || !c.update.Message.IsCommand() {
			return false
		}
		return slices.Contains(names, c.update.Message.Command())
	}
}

// Text matches plain messages that are not commands.
func Text() Filter {
	return func(c *Ctx) bool {
		return c.update.Message != nil && !c.update.Message.IsCommand() && c.update.Message.Text != ""
	}
}

func Any() Filter {
	return func(*Ctx) bool {
		return true
	}
}
