package mapping

// PointTable holds the points of one device in sheet order.
type PointTable struct {
	// Device is the normalized device name the table is keyed by.
	Device string
	// Source is the workbook the table was loaded from.
	Source string

	keys   []PointKey
	points map[PointKey]PointRecord
}

// NewPointTable creates an empty table for device.
func NewPointTable(device, source string) *PointTable {
	return &PointTable{
		Device: device,
		Source: source,
		points: make(map[PointKey]PointRecord),
	}
}

// Put stores p under its key. A repeated key replaces the earlier point
// in place and reports true.
func (t *PointTable) Put(p PointRecord) bool {
	_, exists := t.points[p.Key]
	if !exists {
		t.keys = append(t.keys, p.Key)
	}

	t.points[p.Key] = p

	return exists
}

// Get returns the point stored under key.
func (t *PointTable) Get(key PointKey) (PointRecord, bool) {
	p, ok := t.points[key]
	return p, ok
}

// FindByIndex returns the first point, in sheet order, whose stringified
// index equals key.
func (t *PointTable) FindByIndex(key PointKey) (PointRecord, bool) {
	for _, k := range t.keys {
		p := t.points[k]
		if p.IndexKey() == key {
			return p, true
		}
	}

	return PointRecord{}, false
}

// Len returns the number of points.
func (t *PointTable) Len() int {
	return len(t.keys)
}

// Points returns the points in sheet order.
func (t *PointTable) Points() []PointRecord {
	out := make([]PointRecord, 0, len(t.keys))
	for _, k := range t.keys {
		out = append(out, t.points[k])
	}

	return out
}

// DeviceTable maps normalized device names to their point tables.
type DeviceTable struct {
	order   []string
	devices map[string]*PointTable
}

// NewDeviceTable creates an empty device table.
func NewDeviceTable() *DeviceTable {
	return &DeviceTable{devices: make(map[string]*PointTable)}
}

// Add registers t under t.Device. When the device is already present the
// new table wins and the replaced one is returned.
func (d *DeviceTable) Add(t *PointTable) *PointTable {
	prev, exists := d.devices[t.Device]
	if !exists {
		d.order = append(d.order, t.Device)
	}

	d.devices[t.Device] = t

	return prev
}

// Lookup returns the point table of device.
func (d *DeviceTable) Lookup(device string) (*PointTable, bool) {
	t, ok := d.devices[device]
	return t, ok
}

// Devices returns device names in load order.
func (d *DeviceTable) Devices() []string {
	return append([]string(nil), d.order...)
}

// Len returns the number of devices.
func (d *DeviceTable) Len() int {
	return len(d.order)
}
