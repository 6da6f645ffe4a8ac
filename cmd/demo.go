package cmd

import (
	"fmt"
	"io"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/heathj/minievent/dom"
	"github.com/heathj/minievent/event"
	"github.com/heathj/minievent/webidl"
)

type demoOptions struct {
	eventType string
	legacy    bool
	prevent   bool
	stop      bool
	immediate bool
	ambient   bool
}

type demoResult struct {
	event   *event.Event
	host    fmt.Stringer
	invoked int
}

func newDemoCmd() *cobra.Command {
	opts := demoOptions{}
	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Adapt a host event and run it through three listeners",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			res := runDemo(opts)
			return report(cmd.OutOrStdout(), res)
		},
	}

	cmd.Flags().StringVarP(&opts.eventType, "type", "t", "click", "event type")
	cmd.Flags().BoolVar(&opts.legacy, "legacy", false, "use a flag-only host event")
	cmd.Flags().BoolVar(&opts.prevent, "prevent", false, "first listener prevents the default action")
	cmd.Flags().BoolVar(&opts.stop, "stop", false, "second listener stops propagation")
	cmd.Flags().BoolVar(&opts.immediate, "immediate", false, "second listener stops immediate propagation")
	cmd.Flags().BoolVar(&opts.ambient, "ambient", false, "pass no host event and read window.event instead")
	return cmd
}

// runDemo plays the part of a dispatcher: it builds the host event, adapts
// it and invokes the listeners in order until one stops immediate
// propagation.
func runDemo(opts demoOptions) demoResult {
	var host fmt.Stringer
	if opts.legacy {
		host = dom.NewLegacyEvent(webidl.DOMString(opts.eventType))
	} else {
		host = dom.NewEvent(webidl.DOMString(opts.eventType), dom.EventInit{Bubbles: true, Cancelable: true})
	}

	win := dom.NewWindow()
	adapter := event.NewAdapter(event.WithEnvironment(win))

	var e *event.Event
	if opts.ambient {
		win.SetCurrentEvent(host)
		defer win.SetCurrentEvent(nil)
		e = adapter.FromHostEvent(nil, opts.eventType, map[string]any{"source": "window"})
	} else {
		e = adapter.FromHostEvent(host, opts.eventType, map[string]any{"source": "argument"})
	}

	listeners := []func(*event.Event){
		func(e *event.Event) {
			if opts.prevent {
				e.PreventDefault()
			}
		},
		func(e *event.Event) {
			switch {
			case opts.immediate:
				e.StopImmediatePropagation()
			case opts.stop:
				e.StopPropagation()
			}
		},
		func(e *event.Event) {},
	}

	res := demoResult{event: e, host: host}
	for i, l := range listeners {
		l(e)
		res.invoked++
		logrus.WithFields(logrus.Fields{
			"listener": i,
			"event":    e.String(),
		}).Debug("listener invoked")
		if e.IsImmediatePropagationStopped() {
			break
		}
	}
	return res
}

func report(w io.Writer, res demoResult) error {
	source, _ := res.event.Get("source")
	_, err := fmt.Fprintf(w,
		"%s source=%v listeners=%d defaultPrevented=%t propagationStopped=%t immediatePropagationStopped=%t\nhost %s\n",
		res.event, source, res.invoked,
		res.event.IsDefaultPrevented(),
		res.event.IsPropagationStopped(),
		res.event.IsImmediatePropagationStopped(),
		res.host,
	)
	return err
}
