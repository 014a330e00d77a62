/*
   Copyright 2025 The DIRPX Authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

// Package grpcx adapts dresult failure reasons to and from gRPC statuses.
//
// A failed Result's error reasons travel as errdetails.ErrorInfo entries
// attached to the status. Like the wire codec, the adapter is lossy about
// concrete subtype identity and about tag value types: tags are stringified
// into the ErrorInfo metadata, and FromStatus reconstitutes base-kind
// reasons only.
package grpcx

import (
	"fmt"

	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/anypb"

	"dirpx.dev/dresult/reason"
)

// Domain is the ErrorInfo domain written for every dresult reason, so
// clients can tell ours apart from other attached details.
const Domain = "dirpx.dev/dresult"

// metadata key carrying the reason message inside ErrorInfo. ErrorInfo has
// no free-text field of its own; Reason is reserved for the type name.
const messageKey = "message"

// ToStatus converts error reasons into a gRPC status with one ErrorInfo
// detail per reason. The status message is the first reason's message.
//
// Detail attachment is best-effort: a reason that cannot be packed (which
// only happens on proto marshaling failure) is skipped rather than failing
// the whole conversion, since the status itself is already meaningful.
func ToStatus(c codes.Code, errs []reason.ErrorReason) *status.Status {
	if len(errs) == 0 {
		return status.New(codes.OK, "")
	}
	st := status.New(c, errs[0].Message())

	details := make([]*errdetails.ErrorInfo, 0, len(errs))
	for _, e := range errs {
		details = append(details, &errdetails.ErrorInfo{
			Reason:   e.TypeName(),
			Domain:   Domain,
			Metadata: metadataFor(e),
		})
	}
	packed := make([]*anypb.Any, 0, len(details))
	for _, d := range details {
		a, err := anypb.New(d)
		if err != nil {
			continue
		}
		packed = append(packed, a)
	}
	p := st.Proto()
	p.Details = append(p.Details, packed...)
	return status.FromProto(p)
}

// Error is shorthand for ToStatus(...).Err().
func Error(c codes.Code, errs []reason.ErrorReason) error {
	return ToStatus(c, errs).Err()
}

// FromStatus reconstitutes error reasons from a status carrying dresult
// ErrorInfo details. Details from other domains are ignored. When the status
// carries no dresult details but is itself an error, a single base reason is
// built from the status message, so no failure arrives empty-handed.
func FromStatus(st *status.Status) []reason.ErrorReason {
	if st == nil || st.Code() == codes.OK {
		return nil
	}
	var out []reason.ErrorReason
	for _, d := range st.Details() {
		info, ok := d.(*errdetails.ErrorInfo)
		if !ok || info.GetDomain() != Domain {
			continue
		}
		md := info.GetMetadata()
		msg := md[messageKey]
		var tags map[string]any
		if len(md) > 1 || (len(md) == 1 && msg == "") {
			tags = make(map[string]any, len(md))
			for k, v := range md {
				if k == messageKey {
					continue
				}
				tags[k] = v
			}
		}
		out = append(out, reason.NewError(msg).WithTags(tags))
	}
	if len(out) == 0 {
		out = append(out, reason.NewError(st.Message()))
	}
	return out
}

// FromError is the error-typed variant of FromStatus. The boolean reports
// whether err was a gRPC status at all.
func FromError(err error) ([]reason.ErrorReason, bool) {
	if err == nil {
		return nil, false
	}
	st, ok := status.FromError(err)
	if !ok {
		return nil, false
	}
	return FromStatus(st), true
}

// metadataFor flattens a reason into ErrorInfo metadata. Tag values are
// stringified; their original types are not recoverable on the way back.
func metadataFor(e reason.ErrorReason) map[string]string {
	md := make(map[string]string, len(e.Tags())+1)
	if e.Message() != "" {
		md[messageKey] = e.Message()
	}
	for k, v := range e.Tags() {
		if k == messageKey {
			continue
		}
		md[k] = fmt.Sprint(v)
	}
	return md
}
