package main

import (
	"flag"

	"github.com/getseabird/gallery/internal/ui"
	"k8s.io/klog/v2"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	klog.InitFlags(nil)
	flag.Parse()
	defer klog.Flush()

	klog.V(1).Infof("gallery %s (%s, %s)", version, commit, date)
	app, err := ui.NewApplication(version)
	if err != nil {
		klog.Fatal(err)
	}
	app.Run()
}
