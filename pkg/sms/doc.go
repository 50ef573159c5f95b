// Package sms delivers text messages through AWS SNS direct publish.
//
// Messages go straight to a phone number, not to a topic. SMS is reserved
// for critical notifications, so the default SMS type is Transactional.
package sms
