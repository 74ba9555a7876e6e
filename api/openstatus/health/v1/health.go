// Package healthv1 contains the messages of the openstatus.health.v1 API.
package healthv1

import "github.com/openstatushq/openstatus-go/api/internal/enumjson"

// ServingStatus is the state reported by HealthService.Check.
type ServingStatus int32

const (
	ServingStatusUnknown    ServingStatus = 0
	ServingStatusServing    ServingStatus = 1
	ServingStatusNotServing ServingStatus = 2
)

var (
	servingStatusName = map[int32]string{
		0: "UNKNOWN",
		1: "SERVING",
		2: "NOT_SERVING",
	}
	servingStatusValue = enumjson.Invert(servingStatusName)
)

func (x ServingStatus) String() string { return enumjson.Name(servingStatusName, int32(x)) }
func (x ServingStatus) MarshalJSON() ([]byte, error) {
	return enumjson.Marshal(servingStatusName, int32(x))
}
func (x *ServingStatus) UnmarshalJSON(b []byte) error {
	v, err := enumjson.Unmarshal(b, servingStatusValue, "ServingStatus")
	*x = ServingStatus(v)
	return err
}

// CheckRequest asks the API for its health. It requires no credentials.
type CheckRequest struct{}

// CheckResponse carries the serving status.
type CheckResponse struct {
	Status ServingStatus `json:"status,omitempty"`
}
