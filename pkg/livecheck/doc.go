// Package livecheck serves the clinic forms over HTTP with live validation.
//
// Blur and change events post a single field to /check and receive its
// feedback as datastar patches. Submissions post the whole form to
// /forms/{form}, where a per-request gate.Gate decides whether the form is
// saved or blocked with a summary alert. The alert is removed by a later
// patch on the same stream once its time is up.
//
//	srv := livecheck.New(
//		livecheck.WithTranslator(i18n.MustBundled(ctx)),
//		livecheck.WithLogger(log),
//		livecheck.WithMetrics(livecheck.NewMetrics(prometheus.NewRegistry())),
//	)
//	http.ListenAndServe(":8080", srv.Routes())
package livecheck
