// Package vidframe composes the frames of a program-execution video.
//
// # Overview
//
// Every frame shows three sections: the program source with the current line
// highlighted, the captured standard output below it, and a variable column
// on the right split into the most recently touched variable and all the
// other live variables. When the last variable refers to another one, a
// connector is routed from one to the other.
//
// # Quick Start
//
//	r, err := vidframe.New("out.gif", cfg)
//	if err != nil {
//		return err
//	}
//	for _, step := range steps {
//		r.StartFrame()
//		r.DrawCode(vidframe.CodeSnapshot{Lines: src, Current: step.Line})
//		r.DrawOutput(step.Output)
//		r.DrawExecutionCaption(step.Count, step.Cur, step.Avg, step.Total)
//		if err := r.FinishFrame(step.Vars); err != nil {
//			return err
//		}
//	}
//	return r.Close(nil)
//
// # Coordinate System
//
// Uses standard raster coordinates:
//   - Origin (0,0) at top-left
//   - X increases right
//   - Y increases down
//
// Text positions in this package refer to the top-left corner of the text
// box, which is as tall as the face's ascent + descent.
//
// # Lifecycle
//
// Section geometry depends on glyph metrics, so it is computed on the first
// [Renderer.StartFrame] and reused for the lifetime of the Renderer. Each
// finished frame is handed to an [encoder.Encoder]; the Renderer never
// touches a frame again after handing it off.
package vidframe
