// Package wxpusher delivers notifications through the WxPusher WeChat push
// service.
//
// A message can target individual subscriber UIDs, topic IDs, or both; the
// configuration is incomplete without an app token and at least one
// target. The raw provider response is carried back in the dispatch result
// for the audit trail.
package wxpusher
