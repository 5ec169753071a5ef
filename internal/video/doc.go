// Package video defines the video-discovery backend capability set, the
// multi-factor quality ranker, and the two-tier source-fallback service that
// selects an instructional anchor video for a lesson. Concrete backends live
// under internal/platform.
package video
