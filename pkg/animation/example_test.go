package animation_test

import (
	"fmt"
	"time"

	"github.com/go-drift/motion/pkg/animation"
	"github.com/go-drift/motion/pkg/geometry"
)

// This example shows how to create and control an animation.
func ExampleAnimationController() {
	controller := animation.NewAnimationController(300 * time.Millisecond)
	controller.Curve = animation.EaseOut

	// Listen for value changes
	controller.AddListener(func() {
		fmt.Printf("Value: %.2f\n", controller.Value)
	})

	// Animate forward (0 -> 1)
	controller.Forward()

	// Later, animate in reverse (1 -> 0)
	controller.Reverse()

	// Clean up when done
	controller.Dispose()
}

// This example shows how to use tweens with an animation controller.
func ExampleAnimationController_withTween() {
	controller := animation.NewAnimationController(500 * time.Millisecond)

	// Map the 0-1 range onto the overlay rectangle of a flight
	rectTween := animation.TweenRect(
		geometry.RectFromLTWH(0, 0, 50, 50),
		geometry.RectFromLTWH(200, 200, 150, 150),
	)

	controller.AddListener(func() {
		frame := rectTween.Transform(controller)
		_ = frame // reposition the overlay widget to frame
	})

	controller.Forward()
	controller.Dispose()
}

// This example shows how to derive a curved sub-animation from a parent clock.
func ExampleCurvedAnimation() {
	parent := animation.NewAnimationController(450 * time.Millisecond)

	// The flight eases independently inside the page transition, and only
	// during the middle 80% of it.
	flight := animation.NewIntervalAnimation(parent, 0.1, 0.9, animation.FlightCurve)

	parent.AddListener(func() {
		fmt.Printf("flight progress: %.2f\n", flight.CurrentValue())
	})

	parent.Forward()
	parent.Dispose()
}
