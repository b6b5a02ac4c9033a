// Package sharedelement animates the same visual item morphing from its
// position on an outgoing screen to its position on an incoming screen.
//
// # Components
//
//   - [Registry]: the process-wide table of registered elements. Widgets on
//     both screens register under a shared identifier; geometry is captured
//     after layout via the host's post-frame callback.
//
//   - Analyzer (free functions): pure computations that plan a transition:
//     aspect-ratio reconciliation ([ComputeAspectRatioPlan]), clip
//     classification ([ComputeClippingStrategy]), performance profiling
//     ([PerformanceOptimization], [AnalyzePerformanceRequirements]), and
//     validation ([ValidateTransition]).
//
//   - [Manager]: owns in-flight [SharedElementTransition] values, including
//     staggered multi-element batches, and enforces one transition per
//     element id at a time.
//
//   - [Coordinator]: the orchestration entry point. Given two screens it
//     discovers matched pairs, derives one optimization profile from the
//     most complex pair, plans transitions, annotates them with the profile,
//     and tracks the episode until completion.
//
//   - [FlightOverlay]: evaluates the per-frame overlay geometry (rect tween,
//     morph transform, elevation, optional path following) that the host
//     paints above both pages while originals are hidden.
//
// # Failure policy
//
// Nothing to animate is not an error: unmatched ids, missing geometry, and
// torn-down screens all degrade to "show the destination page without the
// flight". Only genuine misuse (bad preset files, panics) reaches the
// errors package handler.
//
// All operations must run on the host's UI loop; the package does no
// cross-thread synchronization of its own beyond the frame queue.
package sharedelement
