// Package stub is a sample target module. All it does is write to the output
// file some information about each object handle when each of the callbacks
// is invoked. It can be used to understand the order and the content of the
// calls a host makes when it drives a target.
//
// The output file is named by the "-o" option of the design:
//
//	module top;
//	STUB: a: signal [1]
//	      and g1 (a, b, y);
//	      initial
//	        begin
//	            #10
//	              /* noop */;
//	        end
//	endmodule
package stub
