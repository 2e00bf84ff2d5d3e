package debugui

import (
	"fmt"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/blockfall/loop"
)

// PerformanceStats is a window showing frame times and per-system timings.
type PerformanceStats struct {
	stats func() *loop.SchedulerStats
	timer *loop.FrameTimer

	frameHistory []float32
	frameIndex   int
	filled       int
}

// NewPerformanceStats keeps historyFrames frame times for the graph. stats
// is called once per render.
func NewPerformanceStats(historyFrames int, stats func() *loop.SchedulerStats) *PerformanceStats {
	if historyFrames < 1 {
		historyFrames = 1
	}
	return &PerformanceStats{
		stats:        stats,
		timer:        loop.NewFrameTimer(),
		frameHistory: make([]float32, historyFrames),
	}
}

// Record adds one frame time in milliseconds to the history.
func (ps *PerformanceStats) Record(frameMillis float32) {
	ps.frameHistory[ps.frameIndex] = frameMillis
	ps.frameIndex = (ps.frameIndex + 1) % len(ps.frameHistory)
	if ps.filled < len(ps.frameHistory) {
		ps.filled++
	}
}

// Average returns the mean recorded frame time in milliseconds.
func (ps *PerformanceStats) Average() float32 {
	if ps.filled == 0 {
		return 0
	}
	var total float32
	for _, ft := range ps.frameHistory[:ps.filled] {
		total += ft
	}
	return total / float32(ps.filled)
}

// History returns the recorded frame times, oldest first.
func (ps *PerformanceStats) History() []float32 {
	out := make([]float32, 0, ps.filled)
	if ps.filled < len(ps.frameHistory) {
		return append(out, ps.frameHistory[:ps.filled]...)
	}
	out = append(out, ps.frameHistory[ps.frameIndex:]...)
	return append(out, ps.frameHistory[:ps.frameIndex]...)
}

func (ps *PerformanceStats) Render() {
	ps.Record(float32(ps.timer.Elapsed().Microseconds()) / 1000.0)

	if !imgui.BeginV("Performance Stats", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	stats := ps.stats()
	imgui.Text(fmt.Sprintf("Frames: %d", stats.Frames))
	imgui.Text(fmt.Sprintf("Systems: %d", stats.SystemCount))

	avg := ps.Average()
	if avg > 0 {
		imgui.Text(fmt.Sprintf("Avg Frame Time: %.2f ms (%.0f FPS)", avg, 1000.0/avg))
	}

	imgui.Separator()
	imgui.Text("Frame Time Graph (ms)")
	history := ps.History()
	if len(history) > 0 {
		imgui.PlotLinesFloatPtr("##frametime", &history[0], int32(len(history)))
	}

	if imgui.TreeNodeStr("System Details") {
		const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg
		if imgui.BeginTableV("SystemStatsTable", 5, tableFlags, imgui.NewVec2(0, 0), 0) {
			imgui.TableSetupColumn("System")
			imgui.TableSetupColumn("Runs")
			imgui.TableSetupColumn("Avg (ms)")
			imgui.TableSetupColumn("Min (ms)")
			imgui.TableSetupColumn("Max (ms)")
			imgui.TableHeadersRow()

			for _, sys := range stats.Systems {
				imgui.TableNextRow()
				imgui.TableNextColumn()
				imgui.Text(sys.Name)
				imgui.TableNextColumn()
				imgui.Text(fmt.Sprintf("%d", sys.ExecutionCount))
				imgui.TableNextColumn()
				imgui.Text(fmt.Sprintf("%.3f", float64(sys.AvgDuration.Microseconds())/1000.0))
				imgui.TableNextColumn()
				imgui.Text(fmt.Sprintf("%.3f", float64(sys.MinDuration.Microseconds())/1000.0))
				imgui.TableNextColumn()
				imgui.Text(fmt.Sprintf("%.3f", float64(sys.MaxDuration.Microseconds())/1000.0))
			}

			imgui.EndTable()
		}
		imgui.TreePop()
	}

	imgui.End()
}
