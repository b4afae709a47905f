package chronia

import (
	"encoding/binary"
)

// This file implements the fixed little-endian binary encodings spec.md §6
// specifies for host persistence (pickling-equivalent serialization). Each
// type's MarshalBinary/UnmarshalBinary just appends/reads its own fields in
// the documented order; there is no framing beyond what each format lists,
// since every field has a fixed width (ZonedDateTime's trailing zone name is
// the one variable-length exception and is simply the remainder of the
// buffer).

func (i Instant) MarshalBinary() ([]byte, error) {
	b := make([]byte, 0, 12)
	b = binary.LittleEndian.AppendUint64(b, uint64(i.UnixTimestamp()))
	b = binary.LittleEndian.AppendUint32(b, uint32(i.nanos))
	return b, nil
}

func (i *Instant) UnmarshalBinary(data []byte) error {
	if len(data) != 12 {
		return newError(ReasonInvalidFormat, "Instant binary data must be 12 bytes, got %d", len(data))
	}
	secs := int64(binary.LittleEndian.Uint64(data[0:8]))
	nanos := binary.LittleEndian.Uint32(data[8:12])
	parsed, err := fromUnixNanos(secs, int(nanos))
	if err != nil {
		return err
	}
	*i = parsed
	return nil
}

func (d Date) MarshalBinary() ([]byte, error) {
	b := make([]byte, 0, 4)
	b = binary.LittleEndian.AppendUint16(b, uint16(d.year))
	b = append(b, byte(d.month), byte(d.day))
	return b, nil
}

func (d *Date) UnmarshalBinary(data []byte) error {
	if len(data) != 4 {
		return newError(ReasonInvalidFormat, "Date binary data must be 4 bytes, got %d", len(data))
	}
	year, err := NewYear(int(binary.LittleEndian.Uint16(data[0:2])))
	if err != nil {
		return err
	}
	parsed, err := NewDate(year, Month(data[2]), int(data[3]))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

func appendTimeBinary(b []byte, t Time) []byte {
	b = append(b, byte(t.Hour()), byte(t.Minute()), byte(t.Second()))
	return binary.LittleEndian.AppendUint32(b, uint32(int32(t.nanos)))
}

func readTimeBinary(data []byte) (Time, error) {
	if len(data) != 7 {
		return Time{}, newError(ReasonInvalidFormat, "Time binary data must be 7 bytes, got %d", len(data))
	}
	nanos := int32(binary.LittleEndian.Uint32(data[3:7]))
	return NewTime(int(data[0]), int(data[1]), int(data[2]), int(nanos))
}

func (t Time) MarshalBinary() ([]byte, error) {
	return appendTimeBinary(make([]byte, 0, 7), t), nil
}

func (t *Time) UnmarshalBinary(data []byte) error {
	parsed, err := readTimeBinary(data)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

func appendOffsetDateTimeBinary(b []byte, dt DateTime, offset Offset) ([]byte, error) {
	dateBytes, err := dt.date.MarshalBinary()
	if err != nil {
		return nil, err
	}
	b = append(b, dateBytes...)
	b = appendTimeBinary(b, dt.time)
	return binary.LittleEndian.AppendUint32(b, uint32(int32(offset))), nil
}

func readOffsetDateTimeBinary(data []byte) (DateTime, Offset, error) {
	if len(data) < 15 {
		return DateTime{}, 0, newError(ReasonInvalidFormat, "OffsetDateTime binary data must be at least 15 bytes, got %d", len(data))
	}
	var d Date
	if err := d.UnmarshalBinary(data[0:4]); err != nil {
		return DateTime{}, 0, err
	}
	t, err := readTimeBinary(data[4:11])
	if err != nil {
		return DateTime{}, 0, err
	}
	offset, err := NewOffset(int(int32(binary.LittleEndian.Uint32(data[11:15]))))
	if err != nil {
		return DateTime{}, 0, err
	}
	return DateTime{date: d, time: t}, offset, nil
}

func (o OffsetDateTime) MarshalBinary() ([]byte, error) {
	return appendOffsetDateTimeBinary(make([]byte, 0, 15), o.dt, o.offset)
}

func (o *OffsetDateTime) UnmarshalBinary(data []byte) error {
	if len(data) != 15 {
		return newError(ReasonInvalidFormat, "OffsetDateTime binary data must be 15 bytes, got %d", len(data))
	}
	dt, offset, err := readOffsetDateTimeBinary(data)
	if err != nil {
		return err
	}
	*o = OffsetDateTime{dt: dt, offset: offset}
	return nil
}

func (s SystemDateTime) MarshalBinary() ([]byte, error) {
	return appendOffsetDateTimeBinary(make([]byte, 0, 15), s.dt, s.offset)
}

func (s *SystemDateTime) UnmarshalBinary(data []byte) error {
	if len(data) != 15 {
		return newError(ReasonInvalidFormat, "SystemDateTime binary data must be 15 bytes, got %d", len(data))
	}
	dt, offset, err := readOffsetDateTimeBinary(data)
	if err != nil {
		return err
	}
	*s = SystemDateTime{dt: dt, offset: offset, resolver: DefaultSystemResolver}
	return nil
}

// MarshalBinary renders z as the 15-byte OffsetDateTime encoding followed by
// the zone's UTF-8 IANA name with no length prefix, since it is always the
// last field.
func (z ZonedDateTime) MarshalBinary() ([]byte, error) {
	b, err := appendOffsetDateTimeBinary(make([]byte, 0, 15+len(z.zone.name)), z.dt, z.offset)
	if err != nil {
		return nil, err
	}
	return append(b, z.zone.name...), nil
}

func (z *ZonedDateTime) UnmarshalBinary(data []byte) error {
	if len(data) < 15 {
		return newError(ReasonInvalidFormat, "ZonedDateTime binary data must be at least 15 bytes, got %d", len(data))
	}
	dt, offset, err := readOffsetDateTimeBinary(data[:15])
	if err != nil {
		return err
	}
	zone, err := LoadTimeZone(string(data[15:]))
	if err != nil {
		return err
	}
	amb := zone.AmbiguityForLocal(dt.date, dt.time)
	valid := offset == amb.Offset
	if amb.Kind != Unambiguous {
		valid = offset == amb.Earlier || offset == amb.Later
	}
	if !valid {
		return newError(ReasonInvalidOffset, "offset %s is not valid for %s in %s", offset, dt, zone.name)
	}
	*z = ZonedDateTime{dt: dt, zone: zone, offset: offset}
	return nil
}

func (d DateDelta) MarshalBinary() ([]byte, error) {
	b := make([]byte, 0, 8)
	b = binary.LittleEndian.AppendUint32(b, uint32(int32(d.months)))
	return binary.LittleEndian.AppendUint32(b, uint32(int32(d.days))), nil
}

func (d *DateDelta) UnmarshalBinary(data []byte) error {
	if len(data) != 8 {
		return newError(ReasonInvalidFormat, "DateDelta binary data must be 8 bytes, got %d", len(data))
	}
	months := int32(binary.LittleEndian.Uint32(data[0:4]))
	days := int32(binary.LittleEndian.Uint32(data[4:8]))
	parsed, err := NewDateDelta(0, int(months), int(days))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

func (d TimeDelta) MarshalBinary() ([]byte, error) {
	b := make([]byte, 0, 12)
	b = binary.LittleEndian.AppendUint64(b, uint64(d.seconds))
	return binary.LittleEndian.AppendUint32(b, uint32(d.nanos)), nil
}

func (d *TimeDelta) UnmarshalBinary(data []byte) error {
	if len(data) != 12 {
		return newError(ReasonInvalidFormat, "TimeDelta binary data must be 12 bytes, got %d", len(data))
	}
	secs := int64(binary.LittleEndian.Uint64(data[0:8]))
	nanos := int64(binary.LittleEndian.Uint32(data[8:12]))
	*d = normalizeTimeDelta(secs, nanos)
	return nil
}

func (d DateTimeDelta) MarshalBinary() ([]byte, error) {
	dateBytes, err := d.dateDelta.MarshalBinary()
	if err != nil {
		return nil, err
	}
	timeBytes, err := d.timeDelta.MarshalBinary()
	if err != nil {
		return nil, err
	}
	return append(dateBytes, timeBytes...), nil
}

func (d *DateTimeDelta) UnmarshalBinary(data []byte) error {
	if len(data) != 20 {
		return newError(ReasonInvalidFormat, "DateTimeDelta binary data must be 20 bytes, got %d", len(data))
	}
	var dd DateDelta
	if err := dd.UnmarshalBinary(data[0:8]); err != nil {
		return err
	}
	var td TimeDelta
	if err := td.UnmarshalBinary(data[8:20]); err != nil {
		return err
	}
	*d = DateTimeDelta{dateDelta: dd, timeDelta: td}
	return nil
}

func (ym YearMonth) MarshalBinary() ([]byte, error) {
	b := make([]byte, 0, 3)
	b = binary.LittleEndian.AppendUint16(b, uint16(ym.year))
	return append(b, byte(ym.month)), nil
}

func (ym *YearMonth) UnmarshalBinary(data []byte) error {
	if len(data) != 3 {
		return newError(ReasonInvalidFormat, "YearMonth binary data must be 3 bytes, got %d", len(data))
	}
	year, err := NewYear(int(binary.LittleEndian.Uint16(data[0:2])))
	if err != nil {
		return err
	}
	parsed, err := NewYearMonth(year, Month(data[2]))
	if err != nil {
		return err
	}
	*ym = parsed
	return nil
}

func (md MonthDay) MarshalBinary() ([]byte, error) {
	return []byte{byte(md.month), byte(md.day)}, nil
}

func (md *MonthDay) UnmarshalBinary(data []byte) error {
	if len(data) != 2 {
		return newError(ReasonInvalidFormat, "MonthDay binary data must be 2 bytes, got %d", len(data))
	}
	parsed, err := NewMonthDay(Month(data[0]), int(data[1]))
	if err != nil {
		return err
	}
	*md = parsed
	return nil
}
