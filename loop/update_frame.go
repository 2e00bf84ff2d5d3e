package loop

// UpdateFrame carries per-frame data to every system executed in that frame.
type UpdateFrame struct {
	DeltaTime float64
	Index     uint64
	Commands  *Commands
	Storage   *Storage
}

func newUpdateFrame(dt float64, index uint64, commands *Commands, storage *Storage) *UpdateFrame {
	return &UpdateFrame{
		DeltaTime: dt,
		Index:     index,
		Commands:  commands,
		Storage:   storage,
	}
}
