package monitorv1

import "github.com/openstatushq/openstatus-go/api/internal/enumjson"

// HTTPMethod is the request method used by an HTTP monitor.
type HTTPMethod int32

const (
	HTTPMethodUnspecified HTTPMethod = 0
	HTTPMethodGet         HTTPMethod = 1
	HTTPMethodPost        HTTPMethod = 2
	HTTPMethodHead        HTTPMethod = 3
	HTTPMethodPut         HTTPMethod = 4
	HTTPMethodPatch       HTTPMethod = 5
	HTTPMethodDelete      HTTPMethod = 6
	HTTPMethodTrace       HTTPMethod = 7
	HTTPMethodConnect     HTTPMethod = 8
	HTTPMethodOptions     HTTPMethod = 9
)

var (
	httpMethodName = map[int32]string{
		0: "HTTP_METHOD_UNSPECIFIED",
		1: "HTTP_METHOD_GET",
		2: "HTTP_METHOD_POST",
		3: "HTTP_METHOD_HEAD",
		4: "HTTP_METHOD_PUT",
		5: "HTTP_METHOD_PATCH",
		6: "HTTP_METHOD_DELETE",
		7: "HTTP_METHOD_TRACE",
		8: "HTTP_METHOD_CONNECT",
		9: "HTTP_METHOD_OPTIONS",
	}
	httpMethodValue = enumjson.Invert(httpMethodName)
)

func (x HTTPMethod) String() string               { return enumjson.Name(httpMethodName, int32(x)) }
func (x HTTPMethod) MarshalJSON() ([]byte, error) { return enumjson.Marshal(httpMethodName, int32(x)) }
func (x *HTTPMethod) UnmarshalJSON(b []byte) error {
	v, err := enumjson.Unmarshal(b, httpMethodValue, "HTTPMethod")
	*x = HTTPMethod(v)
	return err
}

// Periodicity is how often a monitor runs.
type Periodicity int32

const (
	PeriodicityUnspecified Periodicity = 0
	Periodicity30S         Periodicity = 1
	Periodicity1M          Periodicity = 2
	Periodicity5M          Periodicity = 3
	Periodicity10M         Periodicity = 4
	Periodicity30M         Periodicity = 5
	Periodicity1H          Periodicity = 6
)

var (
	periodicityName = map[int32]string{
		0: "PERIODICITY_UNSPECIFIED",
		1: "PERIODICITY_30S",
		2: "PERIODICITY_1M",
		3: "PERIODICITY_5M",
		4: "PERIODICITY_10M",
		5: "PERIODICITY_30M",
		6: "PERIODICITY_1H",
	}
	periodicityValue = enumjson.Invert(periodicityName)
)

func (x Periodicity) String() string { return enumjson.Name(periodicityName, int32(x)) }
func (x Periodicity) MarshalJSON() ([]byte, error) {
	return enumjson.Marshal(periodicityName, int32(x))
}
func (x *Periodicity) UnmarshalJSON(b []byte) error {
	v, err := enumjson.Unmarshal(b, periodicityValue, "Periodicity")
	*x = Periodicity(v)
	return err
}

// Region is a checker location.
type Region int32

const (
	RegionUnspecified Region = 0
	RegionAMS         Region = 1
	RegionARN         Region = 2
	RegionATL         Region = 3
	RegionBOG         Region = 4
	RegionBOM         Region = 5
	RegionBOS         Region = 6
	RegionCDG         Region = 7
	RegionDEN         Region = 8
	RegionDFW         Region = 9
	RegionEWR         Region = 10
	RegionEZE         Region = 11
	RegionFRA         Region = 12
	RegionGDL         Region = 13
	RegionGIG         Region = 14
	RegionGRU         Region = 15
	RegionHKG         Region = 16
	RegionIAD         Region = 17
	RegionJNB         Region = 18
	RegionLAX         Region = 19
	RegionLHR         Region = 20
	RegionMAD         Region = 21
	RegionMIA         Region = 22
	RegionNRT         Region = 23
	RegionORD         Region = 24
	RegionOTP         Region = 25
	RegionPHX         Region = 26
	RegionQRO         Region = 27
	RegionSCL         Region = 28
	RegionSEA         Region = 29
	RegionSIN         Region = 30
	RegionSJC         Region = 31
	RegionSYD         Region = 32
	RegionWAW         Region = 33
	RegionYUL         Region = 34
	RegionYYZ         Region = 35
)

var (
	regionName = map[int32]string{
		0:  "REGION_UNSPECIFIED",
		1:  "REGION_AMS",
		2:  "REGION_ARN",
		3:  "REGION_ATL",
		4:  "REGION_BOG",
		5:  "REGION_BOM",
		6:  "REGION_BOS",
		7:  "REGION_CDG",
		8:  "REGION_DEN",
		9:  "REGION_DFW",
		10: "REGION_EWR",
		11: "REGION_EZE",
		12: "REGION_FRA",
		13: "REGION_GDL",
		14: "REGION_GIG",
		15: "REGION_GRU",
		16: "REGION_HKG",
		17: "REGION_IAD",
		18: "REGION_JNB",
		19: "REGION_LAX",
		20: "REGION_LHR",
		21: "REGION_MAD",
		22: "REGION_MIA",
		23: "REGION_NRT",
		24: "REGION_ORD",
		25: "REGION_OTP",
		26: "REGION_PHX",
		27: "REGION_QRO",
		28: "REGION_SCL",
		29: "REGION_SEA",
		30: "REGION_SIN",
		31: "REGION_SJC",
		32: "REGION_SYD",
		33: "REGION_WAW",
		34: "REGION_YUL",
		35: "REGION_YYZ",
	}
	regionValue = enumjson.Invert(regionName)
)

func (x Region) String() string               { return enumjson.Name(regionName, int32(x)) }
func (x Region) MarshalJSON() ([]byte, error) { return enumjson.Marshal(regionName, int32(x)) }
func (x *Region) UnmarshalJSON(b []byte) error {
	v, err := enumjson.Unmarshal(b, regionValue, "Region")
	*x = Region(v)
	return err
}

// MonitorStatus is the aggregated state of a monitor.
type MonitorStatus int32

const (
	MonitorStatusUnspecified MonitorStatus = 0
	MonitorStatusActive      MonitorStatus = 1
	MonitorStatusDegraded    MonitorStatus = 2
	MonitorStatusError       MonitorStatus = 3
)

var (
	monitorStatusName = map[int32]string{
		0: "MONITOR_STATUS_UNSPECIFIED",
		1: "MONITOR_STATUS_ACTIVE",
		2: "MONITOR_STATUS_DEGRADED",
		3: "MONITOR_STATUS_ERROR",
	}
	monitorStatusValue = enumjson.Invert(monitorStatusName)
)

func (x MonitorStatus) String() string { return enumjson.Name(monitorStatusName, int32(x)) }
func (x MonitorStatus) MarshalJSON() ([]byte, error) {
	return enumjson.Marshal(monitorStatusName, int32(x))
}
func (x *MonitorStatus) UnmarshalJSON(b []byte) error {
	v, err := enumjson.Unmarshal(b, monitorStatusValue, "MonitorStatus")
	*x = MonitorStatus(v)
	return err
}

// NumberComparator compares numeric assertion targets.
type NumberComparator int32

const (
	NumberComparatorUnspecified        NumberComparator = 0
	NumberComparatorEqual              NumberComparator = 1
	NumberComparatorNotEqual           NumberComparator = 2
	NumberComparatorGreaterThan        NumberComparator = 3
	NumberComparatorGreaterThanOrEqual NumberComparator = 4
	NumberComparatorLessThan           NumberComparator = 5
	NumberComparatorLessThanOrEqual    NumberComparator = 6
)

var (
	numberComparatorName = map[int32]string{
		0: "NUMBER_COMPARATOR_UNSPECIFIED",
		1: "NUMBER_COMPARATOR_EQUAL",
		2: "NUMBER_COMPARATOR_NOT_EQUAL",
		3: "NUMBER_COMPARATOR_GREATER_THAN",
		4: "NUMBER_COMPARATOR_GREATER_THAN_OR_EQUAL",
		5: "NUMBER_COMPARATOR_LESS_THAN",
		6: "NUMBER_COMPARATOR_LESS_THAN_OR_EQUAL",
	}
	numberComparatorValue = enumjson.Invert(numberComparatorName)
)

func (x NumberComparator) String() string { return enumjson.Name(numberComparatorName, int32(x)) }
func (x NumberComparator) MarshalJSON() ([]byte, error) {
	return enumjson.Marshal(numberComparatorName, int32(x))
}
func (x *NumberComparator) UnmarshalJSON(b []byte) error {
	v, err := enumjson.Unmarshal(b, numberComparatorValue, "NumberComparator")
	*x = NumberComparator(v)
	return err
}

// StringComparator compares string assertion targets.
type StringComparator int32

const (
	StringComparatorUnspecified        StringComparator = 0
	StringComparatorContains           StringComparator = 1
	StringComparatorNotContains        StringComparator = 2
	StringComparatorEqual              StringComparator = 3
	StringComparatorNotEqual           StringComparator = 4
	StringComparatorEmpty              StringComparator = 5
	StringComparatorNotEmpty           StringComparator = 6
	StringComparatorGreaterThan        StringComparator = 7
	StringComparatorGreaterThanOrEqual StringComparator = 8
	StringComparatorLessThan           StringComparator = 9
	StringComparatorLessThanOrEqual    StringComparator = 10
)

var (
	stringComparatorName = map[int32]string{
		0:  "STRING_COMPARATOR_UNSPECIFIED",
		1:  "STRING_COMPARATOR_CONTAINS",
		2:  "STRING_COMPARATOR_NOT_CONTAINS",
		3:  "STRING_COMPARATOR_EQUAL",
		4:  "STRING_COMPARATOR_NOT_EQUAL",
		5:  "STRING_COMPARATOR_EMPTY",
		6:  "STRING_COMPARATOR_NOT_EMPTY",
		7:  "STRING_COMPARATOR_GREATER_THAN",
		8:  "STRING_COMPARATOR_GREATER_THAN_OR_EQUAL",
		9:  "STRING_COMPARATOR_LESS_THAN",
		10: "STRING_COMPARATOR_LESS_THAN_OR_EQUAL",
	}
	stringComparatorValue = enumjson.Invert(stringComparatorName)
)

func (x StringComparator) String() string { return enumjson.Name(stringComparatorName, int32(x)) }
func (x StringComparator) MarshalJSON() ([]byte, error) {
	return enumjson.Marshal(stringComparatorName, int32(x))
}
func (x *StringComparator) UnmarshalJSON(b []byte) error {
	v, err := enumjson.Unmarshal(b, stringComparatorValue, "StringComparator")
	*x = StringComparator(v)
	return err
}

// RecordComparator compares DNS record assertion targets.
type RecordComparator int32

const (
	RecordComparatorUnspecified RecordComparator = 0
	RecordComparatorEqual       RecordComparator = 1
	RecordComparatorNotEqual    RecordComparator = 2
	RecordComparatorContains    RecordComparator = 3
	RecordComparatorNotContains RecordComparator = 4
)

var (
	recordComparatorName = map[int32]string{
		0: "RECORD_COMPARATOR_UNSPECIFIED",
		1: "RECORD_COMPARATOR_EQUAL",
		2: "RECORD_COMPARATOR_NOT_EQUAL",
		3: "RECORD_COMPARATOR_CONTAINS",
		4: "RECORD_COMPARATOR_NOT_CONTAINS",
	}
	recordComparatorValue = enumjson.Invert(recordComparatorName)
)

func (x RecordComparator) String() string { return enumjson.Name(recordComparatorName, int32(x)) }
func (x RecordComparator) MarshalJSON() ([]byte, error) {
	return enumjson.Marshal(recordComparatorName, int32(x))
}
func (x *RecordComparator) UnmarshalJSON(b []byte) error {
	v, err := enumjson.Unmarshal(b, recordComparatorValue, "RecordComparator")
	*x = RecordComparator(v)
	return err
}

// TimeRange selects the window of a monitor summary.
type TimeRange int32

const (
	TimeRangeUnspecified TimeRange = 0
	TimeRange1D          TimeRange = 1
	TimeRange7D          TimeRange = 2
	TimeRange14D         TimeRange = 3
)

var (
	timeRangeName = map[int32]string{
		0: "TIME_RANGE_UNSPECIFIED",
		1: "TIME_RANGE_1D",
		2: "TIME_RANGE_7D",
		3: "TIME_RANGE_14D",
	}
	timeRangeValue = enumjson.Invert(timeRangeName)
)

func (x TimeRange) String() string               { return enumjson.Name(timeRangeName, int32(x)) }
func (x TimeRange) MarshalJSON() ([]byte, error) { return enumjson.Marshal(timeRangeName, int32(x)) }
func (x *TimeRange) UnmarshalJSON(b []byte) error {
	v, err := enumjson.Unmarshal(b, timeRangeValue, "TimeRange")
	*x = TimeRange(v)
	return err
}
