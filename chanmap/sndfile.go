// SPDX-License-Identifier: EPL-2.0

package chanmap

import "fmt"

// libsndfile SF_CHANNEL_MAP_* values.
const (
	sfChannelInvalid int32 = iota
	sfChannelMono
	sfChannelLeft
	sfChannelRight
	sfChannelCenter
	sfChannelFrontLeft
	sfChannelFrontRight
	sfChannelFrontCenter
	sfChannelRearCenter
	sfChannelRearLeft
	sfChannelRearRight
	sfChannelLFE
	sfChannelFrontLeftOfCenter
	sfChannelFrontRightOfCenter
	sfChannelSideLeft
	sfChannelSideRight
	sfChannelTopCenter
	sfChannelTopFrontLeft
	sfChannelTopFrontRight
	sfChannelTopFrontCenter
	sfChannelTopRearLeft
	sfChannelTopRearRight
	sfChannelTopRearCenter
)

var sndfileLabels = map[int32]Label{
	sfChannelMono:               FrontCenter,
	sfChannelLeft:               FrontLeft,
	sfChannelRight:              FrontRight,
	sfChannelCenter:             FrontCenter,
	sfChannelFrontLeft:          FrontLeft,
	sfChannelFrontRight:         FrontRight,
	sfChannelFrontCenter:        FrontCenter,
	sfChannelRearCenter:         BackCenter,
	sfChannelRearLeft:           BackLeft,
	sfChannelRearRight:          BackRight,
	sfChannelLFE:                LowFrequency,
	sfChannelFrontLeftOfCenter:  FrontLeftOfCenter,
	sfChannelFrontRightOfCenter: FrontRightOfCenter,
	sfChannelSideLeft:           SideLeft,
	sfChannelSideRight:          SideRight,
	sfChannelTopCenter:          TopCenter,
	sfChannelTopFrontLeft:       TopFrontLeft,
	sfChannelTopFrontRight:      TopFrontRight,
	sfChannelTopFrontCenter:     TopFrontCenter,
	sfChannelTopRearLeft:        TopBackLeft,
	sfChannelTopRearRight:       TopBackRight,
	sfChannelTopRearCenter:      TopBackCenter,
}

// FromSndfile translates the per-channel positions returned by
// SFC_GET_CHANNEL_MAP_INFO. Invalid and ambisonic positions are rejected.
func FromSndfile(codes []int32) (Map, error) {
	m := make(Map, len(codes))
	for i, c := range codes {
		l, ok := sndfileLabels[c]
		if !ok {
			return nil, fmt.Errorf("%w: sndfile position %d at index %d", ErrUnknownChannel, c, i)
		}
		m[i] = l
	}

	return m, nil
}
